package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/msto63/sellerdesk/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantConstraint bool
	}{
		{"foreign key", &pq.Error{Code: codeForeignKeyViolation, Message: "fk"}, true},
		{"unique", &pq.Error{Code: codeUniqueViolation, Message: "dup"}, true},
		{"wrapped foreign key", fmt.Errorf("exec: %w", &pq.Error{Code: codeForeignKeyViolation}), true},
		{"syntax error", &pq.Error{Code: "42601"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			assert.Equal(t, tt.wantConstraint, errors.Is(got, store.ErrConstraint))
		})
	}
}
