package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// List returns every stored book.
	List(ctx context.Context) ([]Book, error)
	// GetByID returns ErrNotFound when no row has the id.
	GetByID(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, title, author, notes string) error
	// Update overwrites title, author and notes together.
	Update(ctx context.Context, id int64, title, author, notes string) error
	Delete(ctx context.Context, id int64) error
}
