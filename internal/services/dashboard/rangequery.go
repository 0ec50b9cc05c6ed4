package dashboard

import "github.com/NordCoder/testerdash/internal/domain/result"

type RangeState int

const (
	RangeIdle RangeState = iota
	RangePending
	RangeReady
)

// RangeController turns a full selection into range requests. A request is
// issued only when the normalized pair differs from the last issued one.
type RangeController struct {
	last    Bounds
	issued  bool
	state   RangeState
	results []*result.Result
}

func NewRangeController() *RangeController { return &RangeController{} }

// Observe returns the pair to fetch when the selection produced a new one.
// Issuing drops the previous pair's results.
func (r *RangeController) Observe(sel *Selection) (Bounds, bool) {
	b, ok := sel.Bounds()
	if !ok {
		return Bounds{}, false
	}
	if r.issued && b == r.last {
		return Bounds{}, false
	}
	r.last = b
	r.issued = true
	r.state = RangePending
	r.results = nil
	return b, true
}

// Reissue re-arms the current pair, for refresh.
func (r *RangeController) Reissue() (Bounds, bool) {
	if !r.issued {
		return Bounds{}, false
	}
	r.state = RangePending
	r.results = nil
	return r.last, true
}

func (r *RangeController) Available() bool { return r.issued }

func (r *RangeController) Bounds() (Bounds, bool) { return r.last, r.issued }

func (r *RangeController) State() RangeState { return r.state }

func (r *RangeController) Results() []*result.Result { return r.results }

// Complete stores the results for b. Completions for any other pair are
// ignored. A failed fetch leaves the current pair with no results.
func (r *RangeController) Complete(b Bounds, results []*result.Result, err error) bool {
	if !r.issued || b != r.last {
		return false
	}
	r.state = RangeReady
	if err != nil {
		r.results = nil
		return true
	}
	r.results = results
	return true
}

func (r *RangeController) Reset() {
	*r = RangeController{}
}
