package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Requirement) error
	GetByID(ctx context.Context, id uuid.UUID) (Requirement, error)
	List(ctx context.Context) ([]Requirement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
