package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Departments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, name := range []string{"Electronics", "Books", "Computers"} {
		_, err := s.InsertDepartment(ctx, domain.Department{Name: name})
		require.NoError(t, err)
	}

	all, err := s.FindAllDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Books", all[0].Name)
	assert.Equal(t, "Computers", all[1].Name)
	assert.Equal(t, "Electronics", all[2].Name)

	books := all[0]
	books.Name = "Rare Books"
	require.NoError(t, s.UpdateDepartment(ctx, books))

	got, err := s.FindDepartment(ctx, *books.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rare Books", got.Name)
}

func TestStore_DepartmentNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.FindDepartment(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.UpdateDepartment(ctx, domain.Department{ID: domain.IntID(42), Name: "Ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.UpdateDepartment(ctx, domain.Department{Name: "No id"})
	assert.Error(t, err)
}

func TestStore_Sellers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	depID, err := s.InsertDepartment(ctx, domain.Department{Name: "Books"})
	require.NoError(t, err)

	seller := domain.Seller{
		Name:       "Ana",
		Email:      "ana@example.com",
		BirthDate:  time.Date(1990, time.April, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary: decimal.RequireFromString("3000.50"),
	}.WithDepartment(domain.Department{ID: domain.IntID(depID), Name: "Books"})

	id, err := s.InsertSeller(ctx, seller)
	require.NoError(t, err)
	seller.ID = domain.IntID(id)

	got, err := s.FindSeller(ctx, id)
	require.NoError(t, err)
	assert.True(t, seller.Equal(got), "got %s", got)

	seller.BaseSalary = decimal.RequireFromString("3500")
	seller.Department = nil
	require.NoError(t, s.UpdateSeller(ctx, seller))

	got, err = s.FindSeller(ctx, id)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("3500").Equal(got.BaseSalary))
	assert.Nil(t, got.Department)

	_, err = s.InsertSeller(ctx, domain.Seller{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	all, err := s.FindAllSellers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].Name)
	assert.Equal(t, "Bob", all[1].Name)
}

func TestStore_SellerErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.FindSeller(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.UpdateSeller(ctx, domain.Seller{ID: domain.IntID(1), Name: "Ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	orphan := domain.Seller{Name: "Ana", Email: "ana@example.com"}.
		WithDepartment(domain.Department{ID: domain.IntID(99), Name: "Missing"})
	_, err = s.InsertSeller(ctx, orphan)
	assert.ErrorIs(t, err, store.ErrConstraint)
}

func TestStore_MigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestStore_Ping(t *testing.T) {
	s, err := New(Config{Path: filepath.Join(t.TempDir(), "ping.db")})
	require.NoError(t, err)

	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close())
	assert.Error(t, s.Ping(context.Background()))
}
