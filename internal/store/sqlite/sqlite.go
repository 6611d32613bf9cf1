// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     sqlite
// Description: SQLite backend for departments and sellers
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/store"
)

const dateLayout = "2006-01-02"

// Store implements store.Store using SQLite
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ store.Store = (*Store)(nil)

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/sellerdesk.db",
	}
}

// New opens (and creates if needed) the database at cfg.Path
func New(cfg Config) (*Store, error) {
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps :memory: databases alive and serialises writers
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Migrate creates the necessary tables
func (s *Store) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS department (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS seller (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		birth_date TEXT NOT NULL,
		base_salary TEXT NOT NULL,
		department_id INTEGER REFERENCES department(id)
	);

	CREATE INDEX IF NOT EXISTS idx_seller_department ON seller(department_id);
	`

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// FindAllDepartments returns all departments ordered by name
func (s *Store) FindAllDepartments(ctx context.Context) ([]domain.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM department ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var out []domain.Department
	for rows.Next() {
		var id int
		var d domain.Department
		if err := rows.Scan(&id, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		d.ID = domain.IntID(id)
		out = append(out, d)
	}
	return out, rows.Err()
}

// FindDepartment returns the department with id
func (s *Store) FindDepartment(ctx context.Context, id int) (domain.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var d domain.Department
	err := s.db.QueryRowContext(ctx, `SELECT name FROM department WHERE id = ?`, id).Scan(&d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Department{}, fmt.Errorf("department %d: %w", id, store.ErrNotFound)
		}
		return domain.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	d.ID = domain.IntID(id)
	return d, nil
}

// InsertDepartment stores a new department and returns its id
func (s *Store) InsertDepartment(ctx context.Context, d domain.Department) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `INSERT INTO department (name) VALUES (?)`, d.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert department: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read department id: %w", err)
	}
	return int(id), nil
}

// UpdateDepartment overwrites an existing department
func (s *Store) UpdateDepartment(ctx context.Context, d domain.Department) error {
	if d.ID == nil {
		return fmt.Errorf("department id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `UPDATE department SET name = ? WHERE id = ?`, d.Name, *d.ID)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", mapError(err))
	}
	return store.CheckUpdated(res, "department", *d.ID)
}

const sellerSelect = `
	SELECT s.id, s.name, s.email, s.birth_date, s.base_salary, d.id, d.name
	FROM seller s
	LEFT JOIN department d ON d.id = s.department_id`

// FindAllSellers returns all sellers ordered by name
func (s *Store) FindAllSellers(ctx context.Context) ([]domain.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, sellerSelect+` ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
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

// FindSeller returns the seller with id
func (s *Store) FindSeller(ctx context.Context, id int) (domain.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seller, err := scanSeller(s.db.QueryRowContext(ctx, sellerSelect+` WHERE s.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, fmt.Errorf("seller %d: %w", id, store.ErrNotFound)
	}
	return seller, err
}

// InsertSeller stores a new seller and returns its id
func (s *Store) InsertSeller(ctx context.Context, seller domain.Seller) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO seller (name, email, birth_date, base_salary, department_id)
		VALUES (?, ?, ?, ?, ?)
	`, seller.Name, seller.Email, seller.BirthDate.Format(dateLayout), seller.BaseSalary.String(),
		store.DepartmentID(seller))
	if err != nil {
		return 0, fmt.Errorf("failed to insert seller: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read seller id: %w", err)
	}
	return int(id), nil
}

// UpdateSeller overwrites an existing seller
func (s *Store) UpdateSeller(ctx context.Context, seller domain.Seller) error {
	if seller.ID == nil {
		return fmt.Errorf("seller id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE seller
		SET name = ?, email = ?, birth_date = ?, base_salary = ?, department_id = ?
		WHERE id = ?
	`, seller.Name, seller.Email, seller.BirthDate.Format(dateLayout), seller.BaseSalary.String(),
		store.DepartmentID(seller), *seller.ID)
	if err != nil {
		return fmt.Errorf("failed to update seller: %w", mapError(err))
	}
	return store.CheckUpdated(res, "seller", *seller.ID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSeller(row scanner) (domain.Seller, error) {
	var (
		id        int
		seller    domain.Seller
		birthDate string
		salary    string
		deptID    sql.NullInt64
		deptName  sql.NullString
	)
	if err := row.Scan(&id, &seller.Name, &seller.Email, &birthDate, &salary, &deptID, &deptName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Seller{}, err
		}
		return domain.Seller{}, fmt.Errorf("failed to scan seller: %w", err)
	}

	seller.ID = domain.IntID(id)

	bd, err := time.Parse(dateLayout, birthDate)
	if err != nil {
		return domain.Seller{}, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}
	seller.BirthDate = bd

	seller.BaseSalary, err = decimal.NewFromString(salary)
	if err != nil {
		return domain.Seller{}, fmt.Errorf("invalid base salary %q: %w", salary, err)
	}

	if deptID.Valid {
		seller.Department = &domain.Department{ID: domain.IntID(int(deptID.Int64)), Name: deptName.String}
	}
	return seller, nil
}

// mapError turns SQLite constraint failures into store.ErrConstraint
func mapError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s", store.ErrConstraint, sqliteErr.Error())
	}
	return err
}
