package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "microloan-backend/internal/domain/journal"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateJournalInput struct {
	Code        string
	Name        string
	Description string
}

type JournalDTO struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *Usecase) Create(ctx context.Context, in CreateJournalInput) (*JournalDTO, error) {
	if in.Code == "" || in.Name == "" {
		return nil, errors.New("journal code and name are required")
	}

	existing, err := u.repo.GetByCode(ctx, in.Code)
	switch {
	case err == nil:
		return nil, fmt.Errorf("journal code %s already in use by %s", in.Code, existing.Name)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	j := &domain.Journal{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
	}
	if err := u.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return toDTO(j), nil
}

func (u *Usecase) Get(ctx context.Context, code string) (*JournalDTO, error) {
	j, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(j), nil
}

func (u *Usecase) List(ctx context.Context) ([]*JournalDTO, error) {
	js, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*JournalDTO, 0, len(js))
	for _, j := range js {
		out = append(out, toDTO(j))
	}
	return out, nil
}

// Toggle flips a journal's active flag; inactive journals reject new
// payment records at the handler layer.
func (u *Usecase) Toggle(ctx context.Context, code string, active bool) (*JournalDTO, error) {
	j, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	j.Active = active
	if err := u.repo.Save(ctx, j); err != nil {
		return nil, err
	}
	return toDTO(j), nil
}

func toDTO(j *domain.Journal) *JournalDTO {
	return &JournalDTO{
		Code:        j.Code,
		Name:        j.Name,
		Description: j.Description,
		Active:      j.Active,
		CreatedAt:   j.CreatedAt,
	}
}
