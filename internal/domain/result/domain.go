package result

import "time"

// ID identifies a result. IDs grow monotonically in creation order.
type ID int64

type Result struct {
	ID         ID        `json:"id"`
	Passed     bool      `json:"passed"`
	FinishedAt time.Time `json:"finishedAt"`
	Info       string    `json:"info,omitempty"`
}

func (r *Result) HasInfo() bool { return r.Info != "" }
