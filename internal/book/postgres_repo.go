package book

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query capability the repository needs.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	listSQL    = `SELECT id, title, author, notes FROM books ORDER BY id`
	getByIDSQL = `SELECT id, title, author, notes FROM books WHERE id = $1`
	insertSQL  = `INSERT INTO books (title, author, notes) VALUES ($1, $2, $3)`
	updateSQL  = `
		UPDATE books
		SET title = $1, author = $2, notes = $3
		WHERE id = $4`
	deleteSQL = `DELETE FROM books WHERE id = $1`
)

type PostgresRepo struct {
	db      DBTX
	timeout time.Duration
	logger  *slog.Logger
}

// NewPostgresRepo builds a repository over db. A zero timeout leaves
// queries bound only by the caller's context.
func NewPostgresRepo(db DBTX, timeout time.Duration, logger *slog.Logger) *PostgresRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresRepo{db: db, timeout: timeout, logger: logger}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) fail(ctx context.Context, op string, err error, attrs ...any) error {
	args := append([]any{"op", op, "error", err}, attrs...)
	r.logger.ErrorContext(ctx, "error executing query", args...)
	return &BackendError{Op: op, Err: err}
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, listSQL)
	if err != nil {
		return nil, r.fail(ctx, "list", err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Notes); err != nil {
			return nil, r.fail(ctx, "list", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, "list", err)
	}
	return out, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(timeoutCtx, getByIDSQL, id).Scan(&b.ID, &b.Title, &b.Author, &b.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, r.fail(ctx, "get", err, "book_id", id)
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, title, author, notes string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.Exec(timeoutCtx, insertSQL, title, author, notes); err != nil {
		return r.fail(ctx, "create", err)
	}
	r.logger.InfoContext(ctx, "book added", "title", title)
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, id int64, title, author, notes string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, updateSQL, title, author, notes, id)
	if err != nil {
		return r.fail(ctx, "update", err, "book_id", id)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.InfoContext(ctx, "book updated", "book_id", id)
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, deleteSQL, id)
	if err != nil {
		return r.fail(ctx, "delete", err, "book_id", id)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.InfoContext(ctx, "book deleted", "book_id", id)
	return nil
}
