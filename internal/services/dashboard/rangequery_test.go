package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NordCoder/testerdash/internal/domain/result"
)

func TestRangeController_IssuesOnFullSelection(t *testing.T) {
	sel := NewSelection()
	rc := NewRangeController()

	sel.Toggle(7)
	_, ok := rc.Observe(sel)
	require.False(t, ok)
	require.False(t, rc.Available())

	sel.Toggle(3)
	b, ok := rc.Observe(sel)
	require.True(t, ok)
	require.Equal(t, Bounds{Lo: 3, Hi: 7}, b)
	require.True(t, rc.Available())
	require.Equal(t, RangePending, rc.State())
}

func TestRangeController_SamePairNotReissued(t *testing.T) {
	sel := NewSelection()
	rc := NewRangeController()
	sel.Toggle(3)
	sel.Toggle(7)
	_, ok := rc.Observe(sel)
	require.True(t, ok)

	// [7, 3] normalizes to the pair already issued
	sel.Toggle(3)
	_, ok = rc.Observe(sel)
	require.False(t, ok)

	sel.Toggle(3)
	b, ok := rc.Observe(sel)
	require.True(t, ok)
	require.Equal(t, Bounds{Lo: 3, Hi: 3}, b)
}

func TestRangeController_CompleteAndFailure(t *testing.T) {
	sel := NewSelection()
	rc := NewRangeController()
	sel.Toggle(1)
	sel.Toggle(5)
	b, _ := rc.Observe(sel)

	rs := []*result.Result{{ID: 1}, {ID: 5}}
	require.True(t, rc.Complete(b, rs, nil))
	require.Equal(t, RangeReady, rc.State())
	require.Equal(t, rs, rc.Results())

	require.False(t, rc.Complete(Bounds{Lo: 2, Hi: 3}, rs, nil), "other pair is ignored")

	b2, ok := rc.Reissue()
	require.True(t, ok)
	require.Equal(t, b, b2)
	require.Nil(t, rc.Results())
	require.True(t, rc.Complete(b, rs, errors.New("boom")))
	require.Empty(t, rc.Results())
}

func TestRangeController_NewPairDropsOldResults(t *testing.T) {
	sel := NewSelection()
	rc := NewRangeController()
	sel.Toggle(1)
	sel.Toggle(5)
	b, _ := rc.Observe(sel)
	rc.Complete(b, []*result.Result{{ID: 1}}, nil)

	sel.Toggle(9)
	_, ok := rc.Observe(sel)
	require.True(t, ok)
	require.Nil(t, rc.Results())
	require.Equal(t, RangePending, rc.State())
}

func TestRangeController_Reset(t *testing.T) {
	sel := NewSelection()
	rc := NewRangeController()
	sel.Toggle(1)
	sel.Toggle(5)
	rc.Observe(sel)

	rc.Reset()
	require.False(t, rc.Available())
	_, ok := rc.Reissue()
	require.False(t, ok)
	require.Equal(t, RangeIdle, rc.State())
}
