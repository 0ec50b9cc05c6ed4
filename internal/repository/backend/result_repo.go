package backend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/NordCoder/testerdash/internal/domain/result"
)

var _ result.Repo = (*ResultRepo)(nil)

type ResultRepo struct{ c *Client }

func NewResultRepo(c *Client) *ResultRepo { return &ResultRepo{c: c} }

func (r *ResultRepo) History(ctx context.Context, name string) ([]*result.Result, error) {
	return r.list(ctx, "results", testPath(name, "results"))
}

func (r *ResultRepo) Failures(ctx context.Context, name string) ([]*result.Result, error) {
	return r.list(ctx, "failures", testPath(name, "failures"))
}

func (r *ResultRepo) Range(ctx context.Context, name string, lo, hi result.ID) ([]*result.Result, error) {
	path := testPath(name, "results", strconv.FormatInt(int64(lo), 10), strconv.FormatInt(int64(hi), 10))
	return r.list(ctx, "range", path)
}

func (r *ResultRepo) list(ctx context.Context, op, path string) ([]*result.Result, error) {
	var out []*result.Result
	if err := r.c.getJSON(ctx, op, path, &out); err != nil {
		return nil, err
	}
	for i, res := range out {
		if res == nil || res.ID <= 0 {
			return nil, fmt.Errorf("%s: %w: entry %d has no id", op, ErrMalformed, i)
		}
	}
	return out, nil
}
