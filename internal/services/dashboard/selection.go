package dashboard

import "github.com/NordCoder/testerdash/internal/domain/result"

const selectionCap = 2

// Selection keeps the two most recently toggled result ids in toggle order.
// A third toggle evicts the oldest entry. Ids are not de-duplicated, so
// toggling the same id twice yields the degenerate pair [id, id].
type Selection struct {
	ids []result.ID
}

func NewSelection() *Selection {
	return &Selection{ids: make([]result.ID, 0, selectionCap)}
}

func (s *Selection) Toggle(id result.ID) {
	if len(s.ids) == selectionCap {
		copy(s.ids, s.ids[1:])
		s.ids = s.ids[:selectionCap-1]
	}
	s.ids = append(s.ids, id)
}

func (s *Selection) Contains(id result.ID) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *Selection) Len() int   { return len(s.ids) }
func (s *Selection) Full() bool { return len(s.ids) == selectionCap }

// IDs returns a copy in toggle order.
func (s *Selection) IDs() []result.ID {
	out := make([]result.ID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Bounds is an ascending, inclusive pair of result ids.
type Bounds struct {
	Lo, Hi result.ID
}

// Bounds normalizes a full selection to ascending order.
func (s *Selection) Bounds() (Bounds, bool) {
	if !s.Full() {
		return Bounds{}, false
	}
	a, b := s.ids[0], s.ids[1]
	if a > b {
		a, b = b, a
	}
	return Bounds{Lo: a, Hi: b}, true
}
