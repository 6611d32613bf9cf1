// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     service
// Description: Save-or-update services over the store repositories
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package service

import (
	"context"
	"errors"

	mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/store"
	"github.com/msto63/sellerdesk/pkg/core/logging"
)

// DepartmentService saves and lists departments
type DepartmentService struct {
	repo   store.DepartmentRepository
	logger *logging.Logger
}

// NewDepartmentService creates a department service
func NewDepartmentService(repo store.DepartmentRepository, logger *logging.Logger) *DepartmentService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &DepartmentService{repo: repo, logger: logger.Named("department")}
}

// FindAll returns all departments ordered by name
func (s *DepartmentService) FindAll(ctx context.Context) ([]domain.Department, error) {
	out, err := s.repo.FindAllDepartments(ctx)
	if err != nil {
		return nil, persistenceFault(err, "department.find_all", "failed to list departments")
	}
	return out, nil
}

// FindByID returns one department
func (s *DepartmentService) FindByID(ctx context.Context, id int) (domain.Department, error) {
	d, err := s.repo.FindDepartment(ctx, id)
	if err != nil {
		return domain.Department{}, persistenceFault(err, "department.find", "failed to get department")
	}
	return d, nil
}

// SaveOrUpdate inserts d when it has no id and updates it otherwise. The
// stored value is returned.
func (s *DepartmentService) SaveOrUpdate(ctx context.Context, d domain.Department) (domain.Department, error) {
	if d.ID == nil {
		id, err := s.repo.InsertDepartment(ctx, d)
		if err != nil {
			return domain.Department{}, persistenceFault(err, "department.insert", "failed to insert department")
		}
		d.ID = domain.IntID(id)
		s.logger.Info("department created", "id", id)
		return d, nil
	}

	if err := s.repo.UpdateDepartment(ctx, d); err != nil {
		return domain.Department{}, persistenceFault(err, "department.update", "failed to update department")
	}
	s.logger.Info("department updated", "id", *d.ID)
	return d, nil
}

// SellerService saves and lists sellers
type SellerService struct {
	repo   store.SellerRepository
	logger *logging.Logger
}

// NewSellerService creates a seller service
func NewSellerService(repo store.SellerRepository, logger *logging.Logger) *SellerService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SellerService{repo: repo, logger: logger.Named("seller")}
}

// FindAll returns all sellers ordered by name
func (s *SellerService) FindAll(ctx context.Context) ([]domain.Seller, error) {
	out, err := s.repo.FindAllSellers(ctx)
	if err != nil {
		return nil, persistenceFault(err, "seller.find_all", "failed to list sellers")
	}
	return out, nil
}

// FindByID returns one seller
func (s *SellerService) FindByID(ctx context.Context, id int) (domain.Seller, error) {
	seller, err := s.repo.FindSeller(ctx, id)
	if err != nil {
		return domain.Seller{}, persistenceFault(err, "seller.find", "failed to get seller")
	}
	return seller, nil
}

// SaveOrUpdate inserts seller when it has no id and updates it otherwise.
// The stored value is returned.
func (s *SellerService) SaveOrUpdate(ctx context.Context, seller domain.Seller) (domain.Seller, error) {
	if seller.ID == nil {
		id, err := s.repo.InsertSeller(ctx, seller)
		if err != nil {
			return domain.Seller{}, persistenceFault(err, "seller.insert", "failed to insert seller")
		}
		seller.ID = domain.IntID(id)
		s.logger.Info("seller created", "id", id)
		return seller, nil
	}

	if err := s.repo.UpdateSeller(ctx, seller); err != nil {
		return domain.Seller{}, persistenceFault(err, "seller.update", "failed to update seller")
	}
	s.logger.Info("seller updated", "id", *seller.ID)
	return seller, nil
}

// persistenceFault wraps a store error into a coded persistence fault
func persistenceFault(err error, operation, message string) error {
	code := mdwerror.CodeDatabaseError
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = mdwerror.CodeNotFound
	case errors.Is(err, store.ErrConstraint):
		code = mdwerror.CodeConstraintViolation
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		code = mdwerror.CodeConnectionFailed
	}
	return mdwerror.Wrap(err, message).
		WithCode(code).
		WithOperation(operation)
}
