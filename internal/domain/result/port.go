package result

import "context"

type Repo interface {
	History(ctx context.Context, test string) ([]*Result, error)
	Failures(ctx context.Context, test string) ([]*Result, error)
	// Range returns the results of test with lo <= id <= hi.
	Range(ctx context.Context, test string, lo, hi ID) ([]*Result, error)
}
