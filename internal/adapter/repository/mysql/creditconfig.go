package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	configDomain "microloan-backend/internal/domain/creditconfig"
)

type CreditConfigRepository struct{ db *gorm.DB }

func NewCreditConfigRepository(db *gorm.DB) *CreditConfigRepository {
	return &CreditConfigRepository{db: db}
}

func (r *CreditConfigRepository) Create(ctx context.Context, c *configDomain.Config) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CreditConfigRepository) Save(ctx context.Context, c *configDomain.Config) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CreditConfigRepository) GetByConfigID(ctx context.Context, configID string) (*configDomain.Config, error) {
	var out configDomain.Config
	res := r.db.WithContext(ctx).Where("config_id = ?", configID).First(&out)
	return &out, res.Error
}

func (r *CreditConfigRepository) GetActive(ctx context.Context) (*configDomain.Config, error) {
	var out configDomain.Config
	res := r.db.WithContext(ctx).Where("active = ?", true).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, configDomain.ErrNoActive
	}
	return &out, res.Error
}

func (r *CreditConfigRepository) List(ctx context.Context) ([]*configDomain.Config, error) {
	var out []*configDomain.Config
	res := r.db.WithContext(ctx).
		Order("active DESC, updated_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *CreditConfigRepository) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&configDomain.Config{}).
		Where("active = ?", true).
		Update("active", false).Error
}
