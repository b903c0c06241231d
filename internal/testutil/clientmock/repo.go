package clientmock

import (
	"context"

	domain "microloan-backend/internal/domain/client"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Client) error
	GetByClientIDFn   func(ctx context.Context, clientID string) (*domain.Client, error)
	GetByNationalIDFn func(ctx context.Context, nationalID string) (*domain.Client, error)
	ListFn            func(ctx context.Context) ([]*domain.Client, error)
	SearchFn          func(ctx context.Context, query string, limit int) ([]*domain.Client, error)
	SaveFn            func(ctx context.Context, c *domain.Client) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Client, error) {
	if m.GetByNationalIDFn != nil {
		return m.GetByNationalIDFn(ctx, nationalID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]*domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Search(ctx context.Context, query string, limit int) ([]*domain.Client, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Client) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
