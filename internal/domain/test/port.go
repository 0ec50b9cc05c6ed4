package test

import "context"

type Repo interface {
	List(ctx context.Context) ([]*Test, error)
}
