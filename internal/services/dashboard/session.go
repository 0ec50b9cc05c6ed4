package dashboard

import (
	"github.com/NordCoder/testerdash/internal/domain/downtime"
	"github.com/NordCoder/testerdash/internal/domain/result"
	"github.com/NordCoder/testerdash/internal/domain/test"
)

// Session is the whole dashboard state. It is owned by a single event loop
// and has no locking. Every mutation returns the fetches it requires; their
// completions come back through Complete.
type Session struct {
	seq    uint64
	latest map[FetchKind]uint64

	loader *Loader
	sel    *Selection
	table  *Table
	rng    *RangeController

	tests        []*test.Test
	testsLoading bool

	feed        []*result.Result
	feedLoading bool

	downtimes        []*downtime.Downtime
	downtimesLoading bool
}

func NewSession(failuresOnly bool) *Session {
	s := &Session{
		latest: make(map[FetchKind]uint64),
		loader: NewLoader(),
		rng:    NewRangeController(),
	}
	s.loader.cur.FailuresOnly = failuresOnly
	s.resetTestState()
	return s
}

// Start issues the initial test list load.
func (s *Session) Start() []Fetch {
	return []Fetch{s.issue(FetchTests)}
}

// Navigate opens the page of test. The selection and range are per visit.
func (s *Session) Navigate(name string) []Fetch {
	if name == s.loader.cur.Test {
		return nil
	}
	s.invalidate(FetchDowntimes, FetchFeed, FetchRange)
	s.resetTestState()
	return s.reconcile(Inputs{Test: name, FailuresOnly: s.loader.cur.FailuresOnly})
}

// Back leaves the test page. In-flight per-test loads become stale.
func (s *Session) Back() {
	s.invalidate(FetchDowntimes, FetchFeed, FetchRange)
	s.resetTestState()
	s.loader.Reconcile(Inputs{FailuresOnly: s.loader.cur.FailuresOnly})
}

func (s *Session) SetFailuresOnly(on bool) []Fetch {
	return s.reconcile(Inputs{Test: s.loader.cur.Test, FailuresOnly: on})
}

func (s *Session) ToggleFailuresOnly() []Fetch {
	return s.SetFailuresOnly(!s.loader.cur.FailuresOnly)
}

// ToggleEndpoint selects the start or end result of a downtime row and
// issues a range fetch when the normalized pair changed.
func (s *Session) ToggleEndpoint(row int, ep Endpoint) []Fetch {
	if !s.table.Toggle(row, ep) {
		return nil
	}
	b, ok := s.rng.Observe(s.sel)
	if !ok {
		return nil
	}
	f := s.issue(FetchRange)
	f.Bounds = b
	return []Fetch{f}
}

// Refresh re-issues every load that belongs to the current screen.
func (s *Session) Refresh() []Fetch {
	if s.loader.cur.Test == "" {
		return []Fetch{s.issue(FetchTests)}
	}
	fetches := []Fetch{s.issue(FetchDowntimes), s.issue(FetchFeed)}
	if b, ok := s.rng.Reissue(); ok {
		f := s.issue(FetchRange)
		f.Bounds = b
		fetches = append(fetches, f)
	}
	return fetches
}

// Complete applies c unless a newer fetch of the same kind was issued since.
// It reports whether c was applied. A failed fetch empties its section.
func (s *Session) Complete(c Completion) bool {
	if s.Stale(c.Fetch) {
		return false
	}
	switch c.Kind {
	case FetchTests:
		s.testsLoading = false
		s.tests = orEmpty(c.Tests, c.Err)
	case FetchFeed:
		s.feedLoading = false
		s.feed = orEmpty(c.Results, c.Err)
	case FetchDowntimes:
		s.downtimesLoading = false
		s.downtimes = orEmpty(c.Downtimes, c.Err)
		s.table = NewTable(s.downtimes, s.sel)
	case FetchRange:
		return s.rng.Complete(c.Bounds, c.Results, c.Err)
	default:
		return false
	}
	return true
}

// Stale reports whether f has been superseded within its slot.
func (s *Session) Stale(f Fetch) bool {
	return f.Seq == 0 || s.latest[f.Kind] != f.Seq
}

func (s *Session) Test() string                    { return s.loader.cur.Test }
func (s *Session) FailuresOnly() bool              { return s.loader.cur.FailuresOnly }
func (s *Session) Tests() []*test.Test             { return s.tests }
func (s *Session) TestsLoading() bool              { return s.testsLoading }
func (s *Session) Feed() []*result.Result          { return s.feed }
func (s *Session) FeedLoading() bool               { return s.feedLoading }
func (s *Session) Downtimes() []*downtime.Downtime { return s.downtimes }
func (s *Session) DowntimesLoading() bool          { return s.downtimesLoading }
func (s *Session) Table() *Table                   { return s.table }
func (s *Session) Selection() *Selection           { return s.sel }
func (s *Session) Range() *RangeController         { return s.rng }

func (s *Session) reconcile(in Inputs) []Fetch {
	kinds := s.loader.Reconcile(in)
	fetches := make([]Fetch, 0, len(kinds))
	for _, k := range kinds {
		if k == FetchFeed {
			// the old feed belongs to other inputs
			s.feed = nil
		}
		fetches = append(fetches, s.issue(k))
	}
	return fetches
}

func (s *Session) issue(k FetchKind) Fetch {
	s.seq++
	s.latest[k] = s.seq
	switch k {
	case FetchTests:
		s.testsLoading = true
	case FetchFeed:
		s.feedLoading = true
	case FetchDowntimes:
		s.downtimesLoading = true
	}
	return Fetch{
		Seq:          s.seq,
		Kind:         k,
		Test:         s.loader.cur.Test,
		FailuresOnly: s.loader.cur.FailuresOnly,
	}
}

func (s *Session) invalidate(kinds ...FetchKind) {
	for _, k := range kinds {
		s.seq++
		s.latest[k] = s.seq
	}
}

func (s *Session) resetTestState() {
	s.sel = NewSelection()
	s.rng.Reset()
	s.feed, s.feedLoading = nil, false
	s.downtimes, s.downtimesLoading = nil, false
	s.table = NewTable(nil, s.sel)
}

func orEmpty[T any](v []T, err error) []T {
	if err != nil || v == nil {
		return []T{}
	}
	return v
}
