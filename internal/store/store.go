// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     store
// Description: Persistence contracts shared by the SQL backends
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msto63/sellerdesk/internal/domain"
)

var (
	// ErrNotFound is returned when an update or lookup targets a missing row
	ErrNotFound = errors.New("record not found")

	// ErrConstraint is returned when a write violates a foreign key or
	// uniqueness constraint
	ErrConstraint = errors.New("constraint violation")
)

// DepartmentRepository persists departments
type DepartmentRepository interface {
	FindAllDepartments(ctx context.Context) ([]domain.Department, error)
	FindDepartment(ctx context.Context, id int) (domain.Department, error)
	InsertDepartment(ctx context.Context, d domain.Department) (int, error)
	UpdateDepartment(ctx context.Context, d domain.Department) error
}

// SellerRepository persists sellers
type SellerRepository interface {
	FindAllSellers(ctx context.Context) ([]domain.Seller, error)
	FindSeller(ctx context.Context, id int) (domain.Seller, error)
	InsertSeller(ctx context.Context, s domain.Seller) (int, error)
	UpdateSeller(ctx context.Context, s domain.Seller) error
}

// Store is a complete backend
type Store interface {
	DepartmentRepository
	SellerRepository

	// Migrate creates missing tables
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// DepartmentID returns the id of the seller's department, or nil
func DepartmentID(s domain.Seller) *int {
	if s.Department == nil {
		return nil
	}
	return s.Department.ID
}

// CheckUpdated reports ErrNotFound when an update touched no row
func CheckUpdated(res sql.Result, entity string, id int) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return nil
}
