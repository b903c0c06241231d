package client

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domain "microloan-backend/internal/domain/client"
	"microloan-backend/internal/testutil/clientmock"
)

func TestRegister_Success(t *testing.T) {
	var stored *domain.Client
	repo := &clientmock.Repo{
		GetByNationalIDFn: func(ctx context.Context, nationalID string) (*domain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, c *domain.Client) error {
			stored = c
			return nil
		},
	}
	uc := NewUsecase(repo)

	dto, err := uc.Register(context.Background(), RegisterInput{
		FirstName:  "Maria",
		LastName:   "Lopez",
		NationalID: "X-1234567",
	})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if len(dto.ClientID) != 32 {
		t.Fatalf("ClientID length: %d", len(dto.ClientID))
	}
	if dto.FullName != "Maria Lopez" {
		t.Fatalf("full name: %s", dto.FullName)
	}
	if dto.State != string(domain.StateActive) || dto.CreditScore != 500 {
		t.Fatalf("defaults: state=%s score=%d", dto.State, dto.CreditScore)
	}
	if stored == nil {
		t.Fatalf("Create not called")
	}
}

func TestRegister_DuplicateNationalID(t *testing.T) {
	repo := &clientmock.Repo{
		GetByNationalIDFn: func(ctx context.Context, nationalID string) (*domain.Client, error) {
			return &domain.Client{ClientID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", NationalID: nationalID}, nil
		},
	}
	uc := NewUsecase(repo)

	_, err := uc.Register(context.Background(), RegisterInput{
		FirstName:  "Maria",
		LastName:   "Lopez",
		NationalID: "X-1234567",
	})
	if err == nil {
		t.Fatalf("expected duplicate national id rejection")
	}
}

func TestRegister_RequiredFields(t *testing.T) {
	uc := NewUsecase(&clientmock.Repo{})

	cases := []RegisterInput{
		{LastName: "Lopez", NationalID: "X-1"},
		{FirstName: "Maria", NationalID: "X-1"},
		{FirstName: "Maria", LastName: "Lopez"},
	}
	for i, in := range cases {
		if _, err := uc.Register(context.Background(), in); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &clientmock.Repo{
		GetByClientIDFn: func(ctx context.Context, id string) (*domain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)

	if _, err := uc.Get(context.Background(), "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSearch_ShortQueryReturnsEmpty(t *testing.T) {
	searched := false
	repo := &clientmock.Repo{
		SearchFn: func(ctx context.Context, q string, limit int) ([]*domain.Client, error) {
			searched = true
			return nil, nil
		},
	}
	uc := NewUsecase(repo)

	out, err := uc.Search(context.Background(), "m")
	if err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if len(out) != 0 || searched {
		t.Fatalf("short query must not hit the repository")
	}
}

func TestSearch_PassesLimit(t *testing.T) {
	repo := &clientmock.Repo{
		SearchFn: func(ctx context.Context, q string, limit int) ([]*domain.Client, error) {
			if q != "mar" || limit != 10 {
				t.Fatalf("search args: q=%s limit=%d", q, limit)
			}
			return []*domain.Client{{ClientID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", FirstName: "Maria"}}, nil
		},
	}
	uc := NewUsecase(repo)

	out, err := uc.Search(context.Background(), "mar")
	if err != nil || len(out) != 1 {
		t.Fatalf("out=%v err=%v", out, err)
	}
}
