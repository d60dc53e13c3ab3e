package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
)

const tenantID uint = 7

type fixture struct {
	repo     *testutil.StatusRepository
	provider *CatalogProvider
	tx       *testutil.Transactor
}

func newFixture() *fixture {
	repo := testutil.NewStatusRepository()
	tx := &testutil.Transactor{}
	return &fixture{
		repo:     repo,
		tx:       tx,
		provider: NewCatalogProvider(repo, testutil.StandardDefaults(), tx, testutil.NewMockLogger()),
	}
}

// seeded loads the default catalog for tenantID.
func (f *fixture) seeded(t *testing.T) statuscatalog.Catalog {
	t.Helper()
	catalog, err := f.provider.Load(context.Background(), tenantID)
	require.NoError(t, err)
	require.Len(t, catalog, 7)
	return catalog
}

func byName(c statuscatalog.Catalog, name string) *statuscatalog.StatusDefinition {
	for _, s := range c {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
