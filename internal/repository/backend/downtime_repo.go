package backend

import (
	"context"
	"fmt"

	"github.com/NordCoder/testerdash/internal/domain/downtime"
)

var _ downtime.Repo = (*DowntimeRepo)(nil)

type DowntimeRepo struct{ c *Client }

func NewDowntimeRepo(c *Client) *DowntimeRepo { return &DowntimeRepo{c: c} }

func (r *DowntimeRepo) ListByTest(ctx context.Context, name string) ([]*downtime.Downtime, error) {
	var out []*downtime.Downtime
	if err := r.c.getJSON(ctx, "downtimes", testPath(name, "downtimes"), &out); err != nil {
		return nil, err
	}
	for i, d := range out {
		if d == nil {
			return nil, fmt.Errorf("downtimes: %w: entry %d is null", ErrMalformed, i)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("downtimes: %w: %w", ErrMalformed, err)
		}
	}
	return out, nil
}
