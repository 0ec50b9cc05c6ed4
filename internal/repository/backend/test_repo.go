package backend

import (
	"context"
	"fmt"

	"github.com/NordCoder/testerdash/internal/domain/test"
)

var _ test.Repo = (*TestRepo)(nil)

type TestRepo struct{ c *Client }

func NewTestRepo(c *Client) *TestRepo { return &TestRepo{c: c} }

func (r *TestRepo) List(ctx context.Context) ([]*test.Test, error) {
	var out []*test.Test
	if err := r.c.getJSON(ctx, "tests", testsPath(), &out); err != nil {
		return nil, err
	}
	for i, t := range out {
		if t == nil || t.Name == "" {
			return nil, fmt.Errorf("tests: %w: entry %d has no name", ErrMalformed, i)
		}
	}
	return out, nil
}
