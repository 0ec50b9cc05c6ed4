package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NordCoder/testerdash/internal/domain/downtime"
	"github.com/NordCoder/testerdash/internal/domain/result"
)

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func idp(v result.ID) *result.ID { return &v }

func closedDowntime(id int64, start, end result.ID) *downtime.Downtime {
	et := t0.Add(time.Duration(end-start) * time.Minute)
	return &downtime.Downtime{ID: id, StartResultID: start, StartTime: t0, EndResultID: idp(end), EndTime: &et}
}

func ongoingDowntime(id int64, start result.ID) *downtime.Downtime {
	return &downtime.Downtime{ID: id, StartResultID: start, StartTime: t0}
}

func TestTable_DisabledEndIsNoop(t *testing.T) {
	sel := NewSelection()
	tbl := NewTable([]*downtime.Downtime{ongoingDowntime(1, 9)}, sel)

	require.False(t, tbl.Enabled(0, EndEndpoint))
	require.False(t, tbl.Toggle(0, EndEndpoint))
	require.Zero(t, sel.Len())

	rows := tbl.Rows()
	require.Len(t, rows, 1)
	require.False(t, rows[0].EndEnabled)
	require.False(t, rows[0].EndChecked)
}

func TestTable_OutOfRangeRow(t *testing.T) {
	tbl := NewTable([]*downtime.Downtime{closedDowntime(1, 1, 5)}, NewSelection())
	require.False(t, tbl.Toggle(3, StartEndpoint))
	require.False(t, tbl.Toggle(-1, StartEndpoint))
	require.False(t, tbl.Enabled(1, StartEndpoint))
}

func TestTable_CheckedFollowsSharedSelection(t *testing.T) {
	sel := NewSelection()
	tbl := NewTable([]*downtime.Downtime{
		closedDowntime(1, 1, 5),
		closedDowntime(2, 10, 12),
	}, sel)

	require.True(t, tbl.Toggle(0, StartEndpoint))
	require.True(t, tbl.Toggle(0, EndEndpoint))
	rows := tbl.Rows()
	require.True(t, rows[0].StartChecked)
	require.True(t, rows[0].EndChecked)

	// a toggle in another row evicts row 0's start
	require.True(t, tbl.Toggle(1, StartEndpoint))
	rows = tbl.Rows()
	require.False(t, rows[0].StartChecked)
	require.True(t, rows[0].EndChecked)
	require.True(t, rows[1].StartChecked)
	require.True(t, tbl.Checked(1, StartEndpoint))
	require.Equal(t, []result.ID{5, 10}, sel.IDs())
}

func TestEndpoint_String(t *testing.T) {
	require.Equal(t, "start", StartEndpoint.String())
	require.Equal(t, "end", EndEndpoint.String())
}
