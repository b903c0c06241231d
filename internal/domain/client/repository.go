package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	// Search matches name or national id, active clients first.
	Search(ctx context.Context, query string, limit int) ([]*Client, error)
	Save(ctx context.Context, c *Client) error
}
