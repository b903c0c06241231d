package creditconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "microloan-backend/internal/domain/creditconfig"
	"microloan-backend/internal/domain/schedule"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(configs domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: configs, uow: tx}
}

type CreateConfigInput struct {
	Name           string
	Description    string
	AnnualRate     decimal.Decimal
	Method         string
	DefaultPeriods int
	MinAmount      decimal.Decimal
	MaxAmount      decimal.Decimal
	MinPeriods     int
	MaxPeriods     int
	OpeningFeePct  decimal.Decimal
	AdminFee       decimal.Decimal
	ExtraPayments  bool
}

type ConfigDTO struct {
	ConfigID       string          `json:"config_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
	Method         string          `json:"method"`
	DefaultPeriods int             `json:"default_periods"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	MinPeriods     int             `json:"min_periods"`
	MaxPeriods     int             `json:"max_periods"`
	OpeningFeePct  decimal.Decimal `json:"opening_fee_pct"`
	AdminFee       decimal.Decimal `json:"admin_fee"`
	ExtraPayments  bool            `json:"extra_payments"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Create validates and stores a new configuration. It starts inactive;
// Activate is the only way to make it the policy for new loans.
func (u *Usecase) Create(ctx context.Context, in CreateConfigInput) (*ConfigDTO, error) {
	method, err := schedule.ParseMethod(in.Method)
	if err != nil {
		return nil, err
	}
	c := &domain.Config{
		ConfigID:       id.New32(),
		Name:           in.Name,
		Description:    in.Description,
		AnnualRate:     in.AnnualRate,
		Method:         method,
		DefaultPeriods: in.DefaultPeriods,
		MinAmount:      in.MinAmount,
		MaxAmount:      in.MaxAmount,
		MinPeriods:     in.MinPeriods,
		MaxPeriods:     in.MaxPeriods,
		OpeningFeePct:  in.OpeningFeePct,
		AdminFee:       in.AdminFee,
		ExtraPayments:  in.ExtraPayments,
		Active:         false,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Update edits an existing configuration. Loans snapshot their terms at
// approval, so editing never touches materialized schedules.
func (u *Usecase) Update(ctx context.Context, configID string, in CreateConfigInput) (*ConfigDTO, error) {
	c, err := u.repo.GetByConfigID(ctx, configID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	method, err := schedule.ParseMethod(in.Method)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Description = in.Description
	c.AnnualRate = in.AnnualRate
	c.Method = method
	c.DefaultPeriods = in.DefaultPeriods
	c.MinAmount = in.MinAmount
	c.MaxAmount = in.MaxAmount
	c.MinPeriods = in.MinPeriods
	c.MaxPeriods = in.MaxPeriods
	c.OpeningFeePct = in.OpeningFeePct
	c.AdminFee = in.AdminFee
	c.ExtraPayments = in.ExtraPayments

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Activate makes one configuration the active policy. Deactivating the
// rest and activating the target happen in a single transaction, so
// concurrent activations can never leave two configs active. Activating
// the already-active config is a no-op that keeps exactly one active.
func (u *Usecase) Activate(ctx context.Context, configID string) (*ConfigDTO, error) {
	var dto *ConfigDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Configs.GetByConfigID(ctx, configID)
		if err != nil {
			return domain.ErrNotFound
		}
		if err := r.Configs.DeactivateAll(ctx); err != nil {
			return err
		}
		c.Active = true
		if err := r.Configs.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, configID string) (*ConfigDTO, error) {
	c, err := u.repo.GetByConfigID(ctx, configID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(c), nil
}

func (u *Usecase) GetActive(ctx context.Context) (*ConfigDTO, error) {
	c, err := u.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]*ConfigDTO, error) {
	cs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ConfigDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toDTO(c))
	}
	return out, nil
}

func toDTO(c *domain.Config) *ConfigDTO {
	return &ConfigDTO{
		ConfigID:       c.ConfigID,
		Name:           c.Name,
		Description:    c.Description,
		AnnualRate:     c.AnnualRate,
		MonthlyRate:    c.MonthlyRate().Round(4),
		Method:         string(c.Method),
		DefaultPeriods: c.DefaultPeriods,
		MinAmount:      c.MinAmount,
		MaxAmount:      c.MaxAmount,
		MinPeriods:     c.MinPeriods,
		MaxPeriods:     c.MaxPeriods,
		OpeningFeePct:  c.OpeningFeePct,
		AdminFee:       c.AdminFee,
		ExtraPayments:  c.ExtraPayments,
		Active:         c.Active,
		CreatedAt:      c.CreatedAt,
	}
}
