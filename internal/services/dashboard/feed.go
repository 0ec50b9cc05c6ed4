package dashboard

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/NordCoder/testerdash/internal/domain/result"
)

const (
	absoluteLayout = "2006-01-02 15:04:05"
	missingTime    = "—"

	passedIcon = "✔"
	failedIcon = "✘"
)

type FeedEntry struct {
	ID       result.ID
	Passed   bool
	Icon     string
	Summary  string
	Relative string
	Absolute string
	Info     string
	ShowInfo bool
}

// RenderFeed maps results to display entries in input order.
func RenderFeed(results []*result.Result, now time.Time) []FeedEntry {
	out := make([]FeedEntry, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		e := FeedEntry{
			ID:       r.ID,
			Passed:   r.Passed,
			Icon:     failedIcon,
			Summary:  "Failed",
			Relative: RelativeTime(r.FinishedAt, now),
			Absolute: AbsoluteTime(r.FinishedAt),
			Info:     r.Info,
			ShowInfo: r.HasInfo(),
		}
		if r.Passed {
			e.Icon, e.Summary = passedIcon, "Passed"
		}
		out = append(out, e)
	}
	return out
}

func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return missingTime
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func AbsoluteTime(t time.Time) string {
	if t.IsZero() {
		return missingTime
	}
	return t.Local().Format(absoluteLayout)
}
