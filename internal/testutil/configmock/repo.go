package configmock

import (
	"context"

	domain "microloan-backend/internal/domain/creditconfig"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, c *domain.Config) error
	SaveFn          func(ctx context.Context, c *domain.Config) error
	GetByConfigIDFn func(ctx context.Context, configID string) (*domain.Config, error)
	GetActiveFn     func(ctx context.Context) (*domain.Config, error)
	ListFn          func(ctx context.Context) ([]*domain.Config, error)
	DeactivateAllFn func(ctx context.Context) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Config) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Config) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByConfigID(ctx context.Context, configID string) (*domain.Config, error) {
	if m.GetByConfigIDFn != nil {
		return m.GetByConfigIDFn(ctx, configID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActive(ctx context.Context) (*domain.Config, error) {
	if m.GetActiveFn != nil {
		return m.GetActiveFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]*domain.Config, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) DeactivateAll(ctx context.Context) error {
	if m.DeactivateAllFn != nil {
		return m.DeactivateAllFn(ctx)
	}
	return nil
}
