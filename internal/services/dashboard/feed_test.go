package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NordCoder/testerdash/internal/domain/result"
)

func TestRenderFeed(t *testing.T) {
	now := t0.Add(time.Hour)
	in := []*result.Result{
		{ID: 9, Passed: false, FinishedAt: now.Add(-3 * time.Minute), Info: "timeout after 30s"},
		{ID: 8, Passed: true, FinishedAt: now.Add(-2 * time.Hour)},
		{ID: 7, Passed: true},
	}

	got := RenderFeed(in, now)
	require.Len(t, got, 3)

	require.Equal(t, result.ID(9), got[0].ID)
	require.Equal(t, "Failed", got[0].Summary)
	require.Equal(t, failedIcon, got[0].Icon)
	require.Equal(t, "3 minutes ago", got[0].Relative)
	require.Equal(t, in[0].FinishedAt.Local().Format("2006-01-02 15:04:05"), got[0].Absolute)
	require.True(t, got[0].ShowInfo)
	require.Equal(t, "timeout after 30s", got[0].Info)

	require.Equal(t, "Passed", got[1].Summary)
	require.Equal(t, passedIcon, got[1].Icon)
	require.Equal(t, "2 hours ago", got[1].Relative)
	require.False(t, got[1].ShowInfo)

	require.Equal(t, "—", got[2].Relative)
	require.Equal(t, "—", got[2].Absolute)
}

func TestRenderFeed_EmptyAndNil(t *testing.T) {
	require.Empty(t, RenderFeed(nil, t0))
	require.Len(t, RenderFeed([]*result.Result{nil, {ID: 1}}, t0), 1)
}
