package downtime

import (
	"errors"
	"fmt"
	"time"

	"github.com/NordCoder/testerdash/internal/domain/result"
)

var ErrMalformed = errors.New("malformed downtime")

// Downtime is a run of consecutive failing results. EndResultID is nil while
// the downtime is still ongoing.
type Downtime struct {
	ID            int64      `json:"id"`
	StartResultID result.ID  `json:"startResultId"`
	StartTime     time.Time  `json:"startTime"`
	EndResultID   *result.ID `json:"endResultId,omitempty"`
	EndTime       *time.Time `json:"endTime,omitempty"`
}

func (d *Downtime) Ongoing() bool { return d.EndResultID == nil }

func (d *Downtime) Validate() error {
	if d.StartResultID <= 0 {
		return fmt.Errorf("%w: id=%d: missing startResultId", ErrMalformed, d.ID)
	}
	if d.EndResultID == nil {
		return nil
	}
	if d.EndTime == nil {
		return fmt.Errorf("%w: id=%d: endResultId without endTime", ErrMalformed, d.ID)
	}
	if *d.EndResultID < d.StartResultID {
		return fmt.Errorf("%w: id=%d: end %d before start %d", ErrMalformed, d.ID, *d.EndResultID, d.StartResultID)
	}
	if d.EndTime.Before(d.StartTime) {
		return fmt.Errorf("%w: id=%d: endTime before startTime", ErrMalformed, d.ID)
	}
	return nil
}

func (d *Downtime) Duration(now time.Time) time.Duration {
	if d.EndTime != nil {
		return d.EndTime.Sub(d.StartTime)
	}
	return now.Sub(d.StartTime)
}
