package mysql

import (
	"context"

	"gorm.io/gorm"

	clientDomain "microloan-backend/internal/domain/client"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) Save(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) GetByNationalID(ctx context.Context, nationalID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) List(ctx context.Context) ([]*clientDomain.Client, error) {
	var out []*clientDomain.Client
	res := r.db.WithContext(ctx).
		Order("first_name ASC, last_name ASC").
		Find(&out)
	return out, res.Error
}

func (r *ClientRepository) Search(ctx context.Context, query string, limit int) ([]*clientDomain.Client, error) {
	var out []*clientDomain.Client
	like := "%" + query + "%"
	res := r.db.WithContext(ctx).
		Where("state = ?", clientDomain.StateActive).
		Where("first_name LIKE ? OR last_name LIKE ? OR national_id LIKE ?", like, like, like).
		Order("first_name ASC, last_name ASC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
