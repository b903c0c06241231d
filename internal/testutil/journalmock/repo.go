package journalmock

import (
	"context"

	domain "microloan-backend/internal/domain/journal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn    func(ctx context.Context, j *domain.Journal) error
	GetByCodeFn func(ctx context.Context, code string) (*domain.Journal, error)
	ListFn      func(ctx context.Context) ([]*domain.Journal, error)
	SaveFn      func(ctx context.Context, j *domain.Journal) error
}

func (m *Repo) Create(ctx context.Context, j *domain.Journal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, j)
	}
	return nil
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Journal, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]*domain.Journal, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, j *domain.Journal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, j)
	}
	return nil
}
