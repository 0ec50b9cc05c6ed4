package dashboard

// Inputs are the values the loader watches. A change of Test reloads every
// per-test section, a change of FailuresOnly reloads only the feed.
type Inputs struct {
	Test         string
	FailuresOnly bool
}

type Loader struct {
	cur    Inputs
	primed bool
}

func NewLoader() *Loader { return &Loader{} }

func (l *Loader) Inputs() Inputs { return l.cur }

// Reconcile records in and reports which sections must be fetched again.
func (l *Loader) Reconcile(in Inputs) []FetchKind {
	prev, primed := l.cur, l.primed
	l.cur, l.primed = in, true

	if in.Test == "" {
		return nil
	}
	switch {
	case !primed || prev.Test != in.Test:
		return []FetchKind{FetchDowntimes, FetchFeed}
	case prev.FailuresOnly != in.FailuresOnly:
		return []FetchKind{FetchFeed}
	}
	return nil
}

// Reset forgets the watched inputs so the next Reconcile loads everything.
func (l *Loader) Reset() {
	l.primed = false
}
