package dashboard

import (
	"github.com/NordCoder/testerdash/internal/domain/downtime"
	"github.com/NordCoder/testerdash/internal/domain/result"
)

type Endpoint int

const (
	StartEndpoint Endpoint = iota
	EndEndpoint
)

func (e Endpoint) String() string {
	if e == EndEndpoint {
		return "end"
	}
	return "start"
}

type Row struct {
	*downtime.Downtime
	StartChecked bool
	EndChecked   bool
	EndEnabled   bool
}

// Table presents downtimes with selectable start and end results. All rows
// share one Selection, so a toggle in one row can uncheck an endpoint in
// another once the selection evicts it.
type Table struct {
	downtimes []*downtime.Downtime
	sel       *Selection
}

func NewTable(downtimes []*downtime.Downtime, sel *Selection) *Table {
	return &Table{downtimes: downtimes, sel: sel}
}

func (t *Table) Len() int { return len(t.downtimes) }

func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.downtimes))
	for _, d := range t.downtimes {
		r := Row{
			Downtime:     d,
			StartChecked: t.sel.Contains(d.StartResultID),
			EndEnabled:   d.EndResultID != nil,
		}
		if r.EndEnabled {
			r.EndChecked = t.sel.Contains(*d.EndResultID)
		}
		rows = append(rows, r)
	}
	return rows
}

func (t *Table) Enabled(row int, ep Endpoint) bool {
	_, ok := t.endpointID(row, ep)
	return ok
}

func (t *Table) Checked(row int, ep Endpoint) bool {
	id, ok := t.endpointID(row, ep)
	return ok && t.sel.Contains(id)
}

// Toggle selects the result behind an endpoint. Disabled endpoints (the end
// of an ongoing downtime) and out-of-range rows are ignored.
func (t *Table) Toggle(row int, ep Endpoint) bool {
	id, ok := t.endpointID(row, ep)
	if !ok {
		return false
	}
	t.sel.Toggle(id)
	return true
}

func (t *Table) endpointID(row int, ep Endpoint) (result.ID, bool) {
	if row < 0 || row >= len(t.downtimes) {
		return 0, false
	}
	d := t.downtimes[row]
	switch ep {
	case StartEndpoint:
		return d.StartResultID, true
	case EndEndpoint:
		if d.EndResultID == nil {
			return 0, false
		}
		return *d.EndResultID, true
	}
	return 0, false
}
