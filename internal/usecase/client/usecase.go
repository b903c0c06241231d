package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "microloan-backend/internal/domain/client"
	"microloan-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FirstName  string
	LastName   string
	NationalID string
	Phone      string
	Email      string
	Address    string
	BirthDate  *time.Time
}

type ClientDTO struct {
	ClientID    string     `json:"client_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	FullName    string     `json:"full_name"`
	NationalID  string     `json:"national_id"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	State       string     `json:"state"`
	CreditScore int        `json:"credit_score"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*ClientDTO, error) {
	if in.FirstName == "" || in.LastName == "" || in.NationalID == "" {
		return nil, errors.New("first name, last name and national id are required")
	}

	existing, err := u.repo.GetByNationalID(ctx, in.NationalID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("national id %s already registered to client %s", in.NationalID, existing.ClientID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	c := &domain.Client{
		ClientID:    id.New32(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		NationalID:  in.NationalID,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		BirthDate:   in.BirthDate,
		State:       domain.StateActive,
		CreditScore: 500,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]*ClientDTO, error) {
	cs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(cs), nil
}

// Search matches clients by name fragment or national id.
func (u *Usecase) Search(ctx context.Context, query string) ([]*ClientDTO, error) {
	if len(query) < 2 {
		return []*ClientDTO{}, nil
	}
	cs, err := u.repo.Search(ctx, query, 10)
	if err != nil {
		return nil, err
	}
	return toDTOs(cs), nil
}

func toDTO(c *domain.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:    c.ClientID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		FullName:    c.FullName(),
		NationalID:  c.NationalID,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		BirthDate:   c.BirthDate,
		State:       string(c.State),
		CreditScore: c.CreditScore,
		CreatedAt:   c.CreatedAt,
	}
}

func toDTOs(cs []*domain.Client) []*ClientDTO {
	out := make([]*ClientDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toDTO(c))
	}
	return out
}
