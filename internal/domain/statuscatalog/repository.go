package statuscatalog

import "context"

// Repository persists status definitions. Every method is scoped by tenant.
type Repository interface {
	// ListByTenant returns statuses ordered by display order then id.
	ListByTenant(ctx context.Context, tenantID uint, includeInactive bool) ([]*StatusDefinition, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
	GetByID(ctx context.Context, tenantID, id uint) (*StatusDefinition, error)
	Create(ctx context.Context, status *StatusDefinition) error
	CreateBatch(ctx context.Context, statuses []*StatusDefinition) error
	// Update persists changes with an optimistic version check.
	Update(ctx context.Context, status *StatusDefinition) error
	// UpdateOrders persists new display orders for several statuses at once,
	// so swapping two orders never trips the active-order unique index.
	UpdateOrders(ctx context.Context, statuses []*StatusDefinition) error
}

// Template describes one entry of the default catalog.
type Template struct {
	Name       string
	Order      int
	Color      string
	Icon       string
	IsTerminal bool
}

// DefaultsProvider supplies the catalog seeded for tenants that have none.
type DefaultsProvider interface {
	Defaults() ([]Template, error)
}

// BuildDefaults turns templates into new statuses for tenantID.
func BuildDefaults(tenantID uint, templates []Template) ([]*StatusDefinition, error) {
	out := make([]*StatusDefinition, 0, len(templates))
	hasOpen := false
	for _, t := range templates {
		s, err := NewStatusDefinition(tenantID, t.Name, t.Order, t.Color, t.Icon, t.IsTerminal)
		if err != nil {
			return nil, err
		}
		if !t.IsTerminal {
			hasOpen = true
		}
		out = append(out, s)
	}
	if !hasOpen {
		return nil, ErrInvalidDefaultsSet
	}
	if err := Catalog(out).checkUniqueOrders(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c Catalog) checkUniqueOrders() error {
	seen := make(map[int]bool, len(c))
	for _, s := range c {
		if seen[s.DisplayOrder()] {
			return ErrOrderTaken
		}
		seen[s.DisplayOrder()] = true
	}
	return nil
}
