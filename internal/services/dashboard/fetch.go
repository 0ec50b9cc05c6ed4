package dashboard

import (
	"fmt"

	"github.com/NordCoder/testerdash/internal/domain/downtime"
	"github.com/NordCoder/testerdash/internal/domain/result"
	"github.com/NordCoder/testerdash/internal/domain/test"
)

// FetchKind names a slot of the session. Each slot only accepts the
// completion of its most recently issued fetch.
type FetchKind int

const (
	FetchTests FetchKind = iota
	FetchDowntimes
	FetchFeed
	FetchRange
)

func (k FetchKind) String() string {
	switch k {
	case FetchTests:
		return "tests"
	case FetchDowntimes:
		return "downtimes"
	case FetchFeed:
		return "feed"
	case FetchRange:
		return "range"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Fetch is a snapshot of the inputs a request was issued with.
type Fetch struct {
	Seq          uint64
	Kind         FetchKind
	Test         string
	FailuresOnly bool
	Bounds       Bounds
}

type Completion struct {
	Fetch
	Tests     []*test.Test
	Results   []*result.Result
	Downtimes []*downtime.Downtime
	Err       error
}
