package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/NordCoder/testerdash/internal/domain/downtime"
	"github.com/NordCoder/testerdash/internal/domain/result"
	"github.com/NordCoder/testerdash/internal/domain/test"
)

type fakeRepos struct {
	calls []string
	err   error

	tests     []*test.Test
	history   []*result.Result
	failures  []*result.Result
	downtimes []*downtime.Downtime
	lo, hi    result.ID
}

func (f *fakeRepos) List(context.Context) ([]*test.Test, error) {
	f.calls = append(f.calls, "tests")
	return f.tests, f.err
}

func (f *fakeRepos) History(_ context.Context, name string) ([]*result.Result, error) {
	f.calls = append(f.calls, "results:"+name)
	return f.history, f.err
}

func (f *fakeRepos) Failures(_ context.Context, name string) ([]*result.Result, error) {
	f.calls = append(f.calls, "failures:"+name)
	return f.failures, f.err
}

func (f *fakeRepos) Range(_ context.Context, name string, lo, hi result.ID) ([]*result.Result, error) {
	f.calls = append(f.calls, "range:"+name)
	f.lo, f.hi = lo, hi
	return f.history, f.err
}

func (f *fakeRepos) ListByTest(_ context.Context, name string) ([]*downtime.Downtime, error) {
	f.calls = append(f.calls, "downtimes:"+name)
	return f.downtimes, f.err
}

func newUC(f *fakeRepos, log *zap.Logger) *Usecase { return NewUC(f, f, f, log) }

func TestUsecase_FeedModeSelectsEndpoint(t *testing.T) {
	f := &fakeRepos{
		history:  []*result.Result{{ID: 1, Passed: true}, {ID: 2}},
		failures: []*result.Result{{ID: 2}},
	}
	uc := newUC(f, nil)
	ctx := context.Background()

	c := uc.Execute(ctx, Fetch{Seq: 1, Kind: FetchFeed, Test: "LeanStorage", FailuresOnly: true})
	require.NoError(t, c.Err)
	require.Equal(t, f.failures, c.Results)

	c = uc.Execute(ctx, Fetch{Seq: 2, Kind: FetchFeed, Test: "LeanStorage"})
	require.NoError(t, c.Err)
	require.Equal(t, f.history, c.Results)
	require.Equal(t, uint64(2), c.Seq)

	require.Equal(t, []string{"failures:LeanStorage", "results:LeanStorage"}, f.calls)
}

func TestUsecase_RangeAndDowntimes(t *testing.T) {
	f := &fakeRepos{downtimes: []*downtime.Downtime{ongoingDowntime(1, 3)}}
	uc := newUC(f, nil)
	ctx := context.Background()

	c := uc.Execute(ctx, Fetch{Seq: 1, Kind: FetchRange, Test: "LeanStorage", Bounds: Bounds{Lo: 1, Hi: 5}})
	require.NoError(t, c.Err)
	require.Equal(t, result.ID(1), f.lo)
	require.Equal(t, result.ID(5), f.hi)

	c = uc.Execute(ctx, Fetch{Seq: 2, Kind: FetchDowntimes, Test: "LeanStorage"})
	require.NoError(t, c.Err)
	require.Len(t, c.Downtimes, 1)

	c = uc.Execute(ctx, Fetch{Seq: 3, Kind: FetchTests})
	require.NoError(t, c.Err)
}

func TestUsecase_ErrorIsLoggedAndEmptied(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	boom := errors.New("connection refused")
	f := &fakeRepos{err: boom, history: []*result.Result{{ID: 1}}}
	uc := newUC(f, zap.New(core))

	c := uc.Execute(context.Background(), Fetch{Seq: 4, Kind: FetchFeed, Test: "LeanStorage"})
	require.ErrorIs(t, c.Err, boom)
	require.Nil(t, c.Results)
	require.Equal(t, 1, logs.FilterMessage("section load failed, rendering empty").Len())
	require.Equal(t, "feed", logs.All()[0].ContextMap()["kind"])
}

func TestUsecase_UnknownKind(t *testing.T) {
	c := newUC(&fakeRepos{}, nil).Execute(context.Background(), Fetch{Seq: 1, Kind: FetchKind(42)})
	require.Error(t, c.Err)
}
