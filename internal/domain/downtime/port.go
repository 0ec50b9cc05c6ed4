package downtime

import "context"

type Repo interface {
	ListByTest(ctx context.Context, test string) ([]*Downtime, error)
}
