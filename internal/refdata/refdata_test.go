package refdata

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/form/metrics"
)

type finderFunc func(ctx context.Context) ([]domain.Department, error)

func (f finderFunc) FindAll(ctx context.Context) ([]domain.Department, error) {
	return f(ctx)
}

func departments() []domain.Department {
	return []domain.Department{
		{ID: domain.IntID(1), Name: "Books"},
		{ID: domain.IntID(2), Name: "Computers"},
		{ID: domain.IntID(3), Name: "Electronics"},
	}
}

func TestLoader_Load(t *testing.T) {
	calls := 0
	loader := NewLoader(finderFunc(func(ctx context.Context) ([]domain.Department, error) {
		calls++
		return departments(), nil
	}))

	list, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, "Books", list.At(0).Name)
	assert.Equal(t, "Electronics", list.At(2).Name)

	_, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "every load must hit the finder")
}

func TestLoader_LoadFailure(t *testing.T) {
	loader := NewLoader(finderFunc(func(ctx context.Context) ([]domain.Department, error) {
		return nil, errors.New("connection refused")
	}))

	list, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, mdwerror.IsPersistence(err))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDatabaseError))
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, list.IsEmpty())
}

func TestLoader_KeepsPersistenceCode(t *testing.T) {
	cause := mdwerror.New("no connection").WithCode(mdwerror.CodeConnectionFailed)
	loader := NewLoader(finderFunc(func(ctx context.Context) ([]domain.Department, error) {
		return nil, cause
	}))

	_, err := loader.Load(context.Background())
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeConnectionFailed))
}

func TestLoader_NilFinderPanics(t *testing.T) {
	loader := NewLoader(nil)
	assert.Panics(t, func() {
		_, _ = loader.Load(context.Background())
	})
}

func TestLoader_RecordsDuration(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	loader := NewLoader(finderFunc(func(ctx context.Context) ([]domain.Department, error) {
		return departments(), nil
	}), WithMetrics(m))

	_, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.CollectAndCount(m.ReferenceLoadDuration))
}

func TestList_Immutable(t *testing.T) {
	src := departments()
	list := NewList(src...)

	src[0].Name = "Changed"
	*src[1].ID = 99
	assert.Equal(t, "Books", list.At(0).Name)
	assert.Equal(t, 2, *list.At(1).ID)

	items := list.Items()
	items[0].Name = "Changed"
	*items[2].ID = 42
	assert.Equal(t, "Books", list.At(0).Name)
	assert.Equal(t, 3, *list.At(2).ID)
}

func TestList_FirstAndIndexOf(t *testing.T) {
	var empty List
	_, ok := empty.First()
	assert.False(t, ok)

	list := NewList(departments()...)
	first, ok := list.First()
	require.True(t, ok)
	assert.Equal(t, "Books", first.Name)

	assert.Equal(t, 1, list.IndexOf(domain.Department{ID: domain.IntID(2), Name: "renamed"}))
	assert.Equal(t, 2, list.IndexOf(domain.Department{Name: "Electronics", ID: domain.IntID(3)}))
	assert.Equal(t, -1, list.IndexOf(domain.Department{ID: domain.IntID(9)}))
	assert.Equal(t, -1, list.IndexOf(domain.Department{Name: "Books"}))
}
