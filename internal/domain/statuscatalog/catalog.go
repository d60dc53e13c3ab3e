package statuscatalog

import (
	"sort"
	"strings"
)

// Catalog is the full status set of one tenant, active and inactive.
// It enforces the cross-status invariants: unique display order and
// unique name among active statuses, and at least one open status.
type Catalog []*StatusDefinition

// Active returns the active statuses in display order.
func (c Catalog) Active() []*StatusDefinition {
	out := make([]*StatusDefinition, 0, len(c))
	for _, s := range c {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	sortByOrder(out)
	return out
}

// Find returns the status with id, or nil.
func (c Catalog) Find(id uint) *StatusDefinition {
	for _, s := range c {
		if s.ID() == id {
			return s
		}
	}
	return nil
}

// FirstOpen returns the first active non-terminal status in display order.
func (c Catalog) FirstOpen() (*StatusDefinition, error) {
	for _, s := range c.Active() {
		if !s.IsTerminal() {
			return s, nil
		}
	}
	return nil, ErrNoOpenStatus
}

// NextOrder returns one past the highest order in use.
func (c Catalog) NextOrder() int {
	highest := 0
	for _, s := range c {
		if s.IsActive() && s.DisplayOrder() > highest {
			highest = s.DisplayOrder()
		}
	}
	return highest + 1
}

// CheckOrder fails when another active status already holds order.
func (c Catalog) CheckOrder(order int, exceptID uint) error {
	if order < 1 {
		return ErrInvalidOrder
	}
	for _, s := range c {
		if s.IsActive() && s.ID() != exceptID && s.DisplayOrder() == order {
			return ErrOrderTaken
		}
	}
	return nil
}

// CheckName fails when another active status already uses name (case-insensitive).
func (c Catalog) CheckName(name string, exceptID uint) error {
	name = strings.TrimSpace(name)
	for _, s := range c {
		if s.IsActive() && s.ID() != exceptID && strings.EqualFold(s.Name(), name) {
			return ErrNameTaken
		}
	}
	return nil
}

// CheckKeepsOpenStatus fails if changing status id to the given terminal/active
// flags would leave the tenant without any open status.
func (c Catalog) CheckKeepsOpenStatus(id uint, terminal, active bool) error {
	if active && !terminal {
		return nil
	}
	for _, s := range c {
		if s.ID() != id && s.IsOpen() {
			return nil
		}
	}
	return ErrLastOpenStatus
}

// Reorder assigns orders 1..n following ids, which must list every active status once.
// It returns the statuses whose order changed.
func (c Catalog) Reorder(ids []uint) ([]*StatusDefinition, error) {
	active := c.Active()
	if len(ids) != len(active) {
		return nil, ErrReorderMismatch
	}

	byID := make(map[uint]*StatusDefinition, len(active))
	for _, s := range active {
		byID[s.ID()] = s
	}

	seen := make(map[uint]bool, len(ids))
	changed := make([]*StatusDefinition, 0, len(ids))
	for i, id := range ids {
		s, ok := byID[id]
		if !ok || seen[id] {
			return nil, ErrReorderMismatch
		}
		seen[id] = true

		before := s.DisplayOrder()
		if err := s.MoveTo(i + 1); err != nil {
			return nil, err
		}
		if s.DisplayOrder() != before {
			changed = append(changed, s)
		}
	}
	return changed, nil
}

func sortByOrder(list []*StatusDefinition) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DisplayOrder() != list[j].DisplayOrder() {
			return list[i].DisplayOrder() < list[j].DisplayOrder()
		}
		return list[i].ID() < list[j].ID()
	})
}
