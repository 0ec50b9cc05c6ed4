package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/NordCoder/testerdash/internal/domain/downtime"
	"github.com/NordCoder/testerdash/internal/domain/result"
	"github.com/NordCoder/testerdash/internal/domain/test"
	"github.com/NordCoder/testerdash/internal/obs"
)

type Usecase struct {
	Tests     test.Repo
	Results   result.Repo
	Downtimes downtime.Repo
	Log       *zap.Logger
}

func NewUC(tests test.Repo, results result.Repo, downtimes downtime.Repo, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{Tests: tests, Results: results, Downtimes: downtimes, Log: log}
}

// Execute performs f against the backend. Errors are logged, counted and
// recorded on the span; the returned completion still carries them so the
// session can render the section empty.
func (u *Usecase) Execute(ctx context.Context, f Fetch) Completion {
	start := time.Now()
	kind := f.Kind.String()

	tr := otel.Tracer("dashboard.uc")
	ctx, span := tr.Start(ctx, "dashboard.fetch."+kind,
		trace.WithAttributes(
			attribute.Int64("fetch.seq", int64(f.Seq)),
			attribute.String("test.name", f.Test),
		),
	)
	defer span.End()

	c := Completion{Fetch: f}
	switch f.Kind {
	case FetchTests:
		c.Tests, c.Err = u.Tests.List(ctx)
		span.SetAttributes(attribute.Int("tests.count", len(c.Tests)))
	case FetchDowntimes:
		c.Downtimes, c.Err = u.Downtimes.ListByTest(ctx, f.Test)
		span.SetAttributes(attribute.Int("downtimes.count", len(c.Downtimes)))
	case FetchFeed:
		span.SetAttributes(attribute.Bool("feed.failures_only", f.FailuresOnly))
		if f.FailuresOnly {
			c.Results, c.Err = u.Results.Failures(ctx, f.Test)
		} else {
			c.Results, c.Err = u.Results.History(ctx, f.Test)
		}
		span.SetAttributes(attribute.Int("results.count", len(c.Results)))
	case FetchRange:
		span.SetAttributes(
			attribute.Int64("range.lo", int64(f.Bounds.Lo)),
			attribute.Int64("range.hi", int64(f.Bounds.Hi)),
		)
		c.Results, c.Err = u.Results.Range(ctx, f.Test, f.Bounds.Lo, f.Bounds.Hi)
		span.SetAttributes(attribute.Int("results.count", len(c.Results)))
	default:
		c.Err = fmt.Errorf("unknown fetch kind %d", int(f.Kind))
	}

	mFetches.WithLabelValues(kind).Inc()
	mFetchDur.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if c.Err != nil {
		c.Err = fmt.Errorf("load %s: %w", kind, c.Err)
		obs.FailSpan(span, c.Err)
		mFetchErrors.WithLabelValues(kind).Inc()
		obs.WithTrace(ctx, u.Log).Warn("section load failed, rendering empty",
			zap.String("kind", kind),
			zap.String("test", f.Test),
			zap.Uint64("seq", f.Seq),
			zap.Error(c.Err),
		)
		c.Tests, c.Results, c.Downtimes = nil, nil, nil
		return c
	}

	obs.WithTrace(ctx, u.Log).Debug("section loaded",
		zap.String("kind", kind),
		zap.String("test", f.Test),
		zap.Uint64("seq", f.Seq),
	)
	return c
}
