package mysql

import (
	"context"

	"gorm.io/gorm"

	journalDomain "microloan-backend/internal/domain/journal"
)

type JournalRepository struct{ db *gorm.DB }

func NewJournalRepository(db *gorm.DB) *JournalRepository { return &JournalRepository{db: db} }

func (r *JournalRepository) Create(ctx context.Context, j *journalDomain.Journal) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JournalRepository) Save(ctx context.Context, j *journalDomain.Journal) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *JournalRepository) GetByCode(ctx context.Context, code string) (*journalDomain.Journal, error) {
	var out journalDomain.Journal
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *JournalRepository) List(ctx context.Context) ([]*journalDomain.Journal, error) {
	var out []*journalDomain.Journal
	res := r.db.WithContext(ctx).
		Order("code ASC, name ASC").
		Find(&out)
	return out, res.Error
}
