package journal

import "context"

type Repository interface {
	Create(ctx context.Context, j *Journal) error
	GetByCode(ctx context.Context, code string) (*Journal, error)
	List(ctx context.Context) ([]*Journal, error)
	Save(ctx context.Context, j *Journal) error
}
