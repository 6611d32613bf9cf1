package form

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/foundation/utils/mathx"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/refdata"
)

var (
	books     = domain.Department{ID: domain.IntID(1), Name: "Books"}
	computers = domain.Department{ID: domain.IntID(2), Name: "Computers"}
)

func testSellerBinder() SellerBinder {
	return NewSellerBinder(mathx.DefaultNumberFormat(), "")
}

func validSellerFields() SellerFields {
	return SellerFields{
		Name:       "Ana",
		Email:      "ana@example.com",
		BirthDate:  "15/04/1990",
		BaseSalary: "3000.00",
		Department: &computers,
	}
}

func TestDepartmentBinder_Map(t *testing.T) {
	tests := []struct {
		name       string
		fields     DepartmentFields
		wantErrors map[string]string
		wantID     *int
	}{
		{
			name:   "new department",
			fields: DepartmentFields{Name: "Books"},
		},
		{
			name:   "existing department",
			fields: DepartmentFields{ID: "5", Name: "Books"},
			wantID: domain.IntID(5),
		},
		{
			name:   "non numeric id is absent",
			fields: DepartmentFields{ID: "null", Name: "Books"},
		},
		{
			name:       "empty name",
			fields:     DepartmentFields{Name: ""},
			wantErrors: map[string]string{FieldName: validation.MsgRequired},
		},
		{
			name:       "whitespace name",
			fields:     DepartmentFields{Name: " \t "},
			wantErrors: map[string]string{FieldName: validation.MsgRequired},
		},
		{
			name:       "name too long",
			fields:     DepartmentFields{Name: strings.Repeat("x", 31)},
			wantErrors: map[string]string{FieldName: "Field can't exceed 30 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DepartmentBinder{}.Map(tt.fields, refdata.List{})
			d, ok := res.Entity()

			if tt.wantErrors != nil {
				assert.False(t, ok)
				assert.False(t, res.IsValid())
				assert.Equal(t, tt.wantErrors, res.Errors().Map())
				assert.Equal(t, domain.Department{}, d)
				return
			}

			require.True(t, ok)
			assert.True(t, res.Errors().IsEmpty())
			assert.Equal(t, tt.fields.Name, d.Name)
			assert.Equal(t, tt.wantID, d.ID)
		})
	}
}

func TestDepartmentBinder_Render(t *testing.T) {
	f := DepartmentBinder{}.Render(domain.Department{ID: domain.IntID(3), Name: "Music"}, refdata.List{})
	assert.Equal(t, DepartmentFields{ID: "3", Name: "Music"}, f)

	f = DepartmentBinder{}.Render(domain.Department{}, refdata.List{})
	assert.Equal(t, DepartmentFields{}, f)
}

func TestSellerBinder_MapValid(t *testing.T) {
	res := testSellerBinder().Map(validSellerFields(), refdata.NewList(books, computers))
	s, ok := res.Entity()
	require.True(t, ok)

	assert.Nil(t, s.ID)
	assert.Equal(t, "Ana", s.Name)
	assert.Equal(t, "ana@example.com", s.Email)
	assert.Equal(t, time.Date(1990, time.April, 15, 0, 0, 0, 0, time.UTC), s.BirthDate)
	assert.True(t, decimal.RequireFromString("3000").Equal(s.BaseSalary))
	require.NotNil(t, s.Department)
	assert.True(t, computers.Equal(*s.Department))
}

func TestSellerBinder_MapIsExhaustive(t *testing.T) {
	f := SellerFields{Name: "", Email: "  ", BirthDate: "", BaseSalary: "abc"}

	res := testSellerBinder().Map(f, refdata.List{})
	_, ok := res.Entity()
	require.False(t, ok)

	errs := res.Errors()
	assert.Equal(t, []string{FieldName, FieldEmail, FieldBirthDate, FieldBaseSalary}, errs.Fields())
	for _, field := range errs.Fields() {
		assert.Equal(t, validation.MsgRequired, errs.Message(field))
	}
}

func TestSellerBinder_MapFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SellerFields)
		field  string
		msg    string
	}{
		{"blank name", func(f *SellerFields) { f.Name = " " }, FieldName, validation.MsgRequired},
		{"long name", func(f *SellerFields) { f.Name = strings.Repeat("n", 71) }, FieldName, "Field can't exceed 70 characters"},
		{"blank email", func(f *SellerFields) { f.Email = "" }, FieldEmail, validation.MsgRequired},
		{"long email", func(f *SellerFields) { f.Email = strings.Repeat("e", 71) }, FieldEmail, "Field can't exceed 70 characters"},
		{"blank birth date", func(f *SellerFields) { f.BirthDate = "" }, FieldBirthDate, validation.MsgRequired},
		{"bad birth date", func(f *SellerFields) { f.BirthDate = "1990-04-15" }, FieldBirthDate, validation.MsgRequired},
		{"blank salary", func(f *SellerFields) { f.BaseSalary = "" }, FieldBaseSalary, validation.MsgRequired},
		{"bad salary", func(f *SellerFields) { f.BaseSalary = "12x" }, FieldBaseSalary, validation.MsgRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSellerFields()
			tt.mutate(&f)

			res := testSellerBinder().Map(f, refdata.List{})
			assert.False(t, res.IsValid())
			assert.Equal(t, map[string]string{tt.field: tt.msg}, res.Errors().Map())
		})
	}
}

func TestSellerBinder_DefaultDepartment(t *testing.T) {
	f := validSellerFields()
	f.Department = nil

	t.Run("first reference item", func(t *testing.T) {
		s, ok := testSellerBinder().Map(f, refdata.NewList(books, computers)).Entity()
		require.True(t, ok)
		require.NotNil(t, s.Department)
		assert.True(t, books.Equal(*s.Department))
	})

	t.Run("no reference data", func(t *testing.T) {
		s, ok := testSellerBinder().Map(f, refdata.List{}).Entity()
		require.True(t, ok)
		assert.Nil(t, s.Department)
	})
}

func TestSellerBinder_Render(t *testing.T) {
	s := domain.Seller{
		ID:         domain.IntID(9),
		Name:       "Bob",
		Email:      "bob@example.com",
		BirthDate:  time.Date(1985, time.December, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary: decimal.RequireFromString("2500.5"),
	}

	f := testSellerBinder().Render(s, refdata.NewList(books, computers))
	assert.Equal(t, "9", f.ID)
	assert.Equal(t, "01/12/1985", f.BirthDate)
	assert.Equal(t, "2500.50", f.BaseSalary)
	require.NotNil(t, f.Department)
	assert.True(t, books.Equal(*f.Department))

	s = s.WithDepartment(computers)
	f = testSellerBinder().Render(s, refdata.NewList(books, computers))
	assert.True(t, computers.Equal(*f.Department))

	f = testSellerBinder().Render(domain.Seller{}, refdata.List{})
	assert.Equal(t, "", f.ID)
	assert.Equal(t, "", f.BirthDate)
	assert.Nil(t, f.Department)
}

func TestSellerBinder_GermanLocale(t *testing.T) {
	b := NewSellerBinder(mathx.NumberFormat{Locale: language.German, Places: 2}, "")
	s := domain.Seller{
		Name:       "Bob",
		Email:      "bob@example.com",
		BirthDate:  time.Date(1985, time.December, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary: decimal.RequireFromString("1234.5"),
	}

	f := b.Render(s, refdata.List{})
	assert.Equal(t, "1234,50", f.BaseSalary)

	back, ok := b.Map(f, refdata.List{}).Entity()
	require.True(t, ok)
	assert.True(t, s.Equal(back))
}

func TestResult(t *testing.T) {
	ok := Ok(domain.Department{Name: "Books"})
	assert.True(t, ok.IsValid())
	assert.True(t, ok.Errors().IsEmpty())

	var errs validation.ErrorSet
	errs.Add(FieldName, validation.CodeRequired, validation.MsgRequired)
	bad := Invalid[domain.Department](errs)
	errs.Add(FieldEmail, validation.CodeRequired, validation.MsgRequired)

	assert.False(t, bad.IsValid())
	assert.Equal(t, 1, bad.Errors().Len(), "result must not alias the caller's set")
}
