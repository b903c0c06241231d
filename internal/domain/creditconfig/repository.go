package creditconfig

import "context"

type Repository interface {
	Create(ctx context.Context, c *Config) error
	Save(ctx context.Context, c *Config) error
	GetByConfigID(ctx context.Context, configID string) (*Config, error)
	// GetActive returns the single active configuration or ErrNoActive.
	GetActive(ctx context.Context) (*Config, error)
	List(ctx context.Context) ([]*Config, error)
	// DeactivateAll clears the active flag on every configuration; only
	// meaningful inside the activation transaction.
	DeactivateAll(ctx context.Context) error
}
