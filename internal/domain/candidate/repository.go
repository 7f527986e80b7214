package candidate

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("candidate not found")

type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
