package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDepartment_Equal(t *testing.T) {
	assert.True(t, Department{Name: "Books"}.Equal(Department{Name: "Books"}))
	assert.True(t, Department{ID: IntID(1), Name: "Books"}.Equal(Department{ID: IntID(1), Name: "Books"}))
	assert.False(t, Department{ID: IntID(1), Name: "Books"}.Equal(Department{Name: "Books"}))
	assert.False(t, Department{ID: IntID(1), Name: "Books"}.Equal(Department{ID: IntID(2), Name: "Books"}))
	assert.False(t, Department{Name: "Books"}.Equal(Department{Name: "Music"}))
}

func TestSeller_Equal(t *testing.T) {
	base := Seller{
		ID:         IntID(4),
		Name:       "Bob",
		Email:      "bob@example.com",
		BirthDate:  time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary: decimal.RequireFromString("3000.00"),
		Department: &Department{ID: IntID(1), Name: "Books"},
	}

	t.Run("decimal by value", func(t *testing.T) {
		other := base
		other.BaseSalary = decimal.RequireFromString("3000")
		assert.True(t, base.Equal(other))
	})

	t.Run("date by day", func(t *testing.T) {
		other := base
		other.BirthDate = time.Date(1990, 4, 15, 13, 30, 0, 0, time.UTC)
		assert.True(t, base.Equal(other))
	})

	t.Run("department differs", func(t *testing.T) {
		other := base.WithDepartment(Department{ID: IntID(2), Name: "Music"})
		assert.False(t, base.Equal(other))
	})

	t.Run("nil department", func(t *testing.T) {
		other := base
		other.Department = nil
		assert.False(t, base.Equal(other))
		assert.True(t, other.Equal(other))
	})
}

func TestSeller_WithDepartmentCopies(t *testing.T) {
	dep := Department{ID: IntID(1), Name: "Books"}
	s := Seller{}.WithDepartment(dep)

	*dep.ID = 9
	dep.Name = "Changed"

	assert.Equal(t, 1, *s.Department.ID)
	assert.Equal(t, "Books", s.Department.Name)
}

func TestString(t *testing.T) {
	assert.Equal(t, `Department{id=null, name="Books"}`, Department{Name: "Books"}.String())
	assert.Equal(t, `Department{id=3, name="Books"}`, Department{ID: IntID(3), Name: "Books"}.String())
}
