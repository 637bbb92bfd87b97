// Package store is the persistence core: the transactional orchestration
// layer over the question/answer tables, the vote ledger and the tag
// index. Every multi-step mutation runs inside one scoped transaction;
// read paths run without one.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

// Store exposes the synchronous operations of the persistence core.
// Construct one at process start and pass it by reference; there is no
// hidden global instance.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// transact runs fn inside a scoped transaction: commit on nil, rollback
// on any error, connection restored on every exit path. Typed domain
// errors pass through untouched; anything else is wrapped as a StoreError
// naming the operation.
func (s *Store) transact(op string, fn func(tx *gorm.DB) error) error {
	if err := s.db.Transaction(fn); err != nil {
		return wrapStoreError(op, err)
	}
	return nil
}

func wrapStoreError(op string, err error) error {
	var (
		validation *models.ValidationError
		notFound   *models.NotFoundError
		constraint *models.ConstraintViolation
	)
	if errors.As(err, &validation) || errors.As(err, &notFound) || errors.As(err, &constraint) {
		return err
	}
	return &models.StoreError{Op: op, Err: err}
}

// Postgres SQLSTATE codes surfaced through pgconn.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// translateFind maps a failed single-row lookup into the typed taxonomy.
func translateFind(entity string, id int, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.NotFoundError{Entity: entity, ID: id}
	}
	return err
}
