// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     postgres
// Description: PostgreSQL backend for departments and sellers
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/store"
)

// PostgreSQL error codes mapped to store.ErrConstraint
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// Store implements store.Store on PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Config holds connection settings.
type Config struct {
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return New(db), nil
}

// New wraps an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS department (
			id   SERIAL PRIMARY KEY,
			name VARCHAR(30) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS seller (
			id            SERIAL PRIMARY KEY,
			name          VARCHAR(70) NOT NULL,
			email         VARCHAR(70) NOT NULL,
			birth_date    DATE NOT NULL,
			base_salary   NUMERIC(14, 2) NOT NULL,
			department_id INTEGER REFERENCES department (id)
		);

		CREATE INDEX IF NOT EXISTS idx_seller_department ON seller (department_id);
	`)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// FindAllDepartments returns all departments ordered by name.
func (s *Store) FindAllDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM department ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []domain.Department
	for rows.Next() {
		var id int
		var d domain.Department
		if err := rows.Scan(&id, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		d.ID = domain.IntID(id)
		out = append(out, d)
	}
	return out, rows.Err()
}

// FindDepartment returns the department with id.
func (s *Store) FindDepartment(ctx context.Context, id int) (domain.Department, error) {
	var d domain.Department
	err := s.db.QueryRowContext(ctx, `SELECT name FROM department WHERE id = $1`, id).Scan(&d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Department{}, fmt.Errorf("department %d: %w", id, store.ErrNotFound)
		}
		return domain.Department{}, fmt.Errorf("get department: %w", err)
	}
	d.ID = domain.IntID(id)
	return d, nil
}

// InsertDepartment stores a new department and returns its id.
func (s *Store) InsertDepartment(ctx context.Context, d domain.Department) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `INSERT INTO department (name) VALUES ($1) RETURNING id`, d.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert department: %w", mapError(err))
	}
	return id, nil
}

// UpdateDepartment overwrites an existing department.
func (s *Store) UpdateDepartment(ctx context.Context, d domain.Department) error {
	if d.ID == nil {
		return fmt.Errorf("department id is required")
	}
	res, err := s.db.ExecContext(ctx, `UPDATE department SET name = $1 WHERE id = $2`, d.Name, *d.ID)
	if err != nil {
		return fmt.Errorf("update department: %w", mapError(err))
	}
	return store.CheckUpdated(res, "department", *d.ID)
}

const sellerSelect = `
	SELECT s.id, s.name, s.email, s.birth_date, s.base_salary, d.id, d.name
	FROM seller s
	LEFT JOIN department d ON d.id = s.department_id`

// FindAllSellers returns all sellers ordered by name.
func (s *Store) FindAllSellers(ctx context.Context) ([]domain.Seller, error) {
	rows, err := s.db.QueryContext(ctx, sellerSelect+` ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var out []domain.Seller
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, seller)
	}
	return out, rows.Err()
}

// FindSeller returns the seller with id.
func (s *Store) FindSeller(ctx context.Context, id int) (domain.Seller, error) {
	seller, err := scanSeller(s.db.QueryRowContext(ctx, sellerSelect+` WHERE s.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, fmt.Errorf("seller %d: %w", id, store.ErrNotFound)
	}
	return seller, err
}

// InsertSeller stores a new seller and returns its id.
func (s *Store) InsertSeller(ctx context.Context, seller domain.Seller) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO seller (name, email, birth_date, base_salary, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, seller.Name, seller.Email, seller.BirthDate, seller.BaseSalary, store.DepartmentID(seller)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert seller: %w", mapError(err))
	}
	return id, nil
}

// UpdateSeller overwrites an existing seller.
func (s *Store) UpdateSeller(ctx context.Context, seller domain.Seller) error {
	if seller.ID == nil {
		return fmt.Errorf("seller id is required")
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE seller
		SET name = $1, email = $2, birth_date = $3, base_salary = $4, department_id = $5
		WHERE id = $6
	`, seller.Name, seller.Email, seller.BirthDate, seller.BaseSalary, store.DepartmentID(seller), *seller.ID)
	if err != nil {
		return fmt.Errorf("update seller: %w", mapError(err))
	}
	return store.CheckUpdated(res, "seller", *seller.ID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSeller(row scanner) (domain.Seller, error) {
	var (
		id       int
		seller   domain.Seller
		deptID   sql.NullInt64
		deptName sql.NullString
	)
	err := row.Scan(&id, &seller.Name, &seller.Email, &seller.BirthDate, &seller.BaseSalary, &deptID, &deptName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Seller{}, err
		}
		return domain.Seller{}, fmt.Errorf("scan seller: %w", err)
	}
	seller.ID = domain.IntID(id)
	if deptID.Valid {
		seller.Department = &domain.Department{ID: domain.IntID(int(deptID.Int64)), Name: deptName.String}
	}
	return seller, nil
}

func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeForeignKeyViolation, codeUniqueViolation:
			return fmt.Errorf("%w: %s", store.ErrConstraint, pqErr.Message)
		}
	}
	return err
}
