package loan

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"microloan-backend/internal/domain/creditconfig"
	"microloan-backend/internal/domain/installment"
	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/schedule"
	"microloan-backend/pkg/id"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

type Usecase struct {
	repo       loan.Repository
	instRepo   installment.Repository
	configRepo creditconfig.Repository
}

func NewUsecase(loans loan.Repository, installments installment.Repository, configs creditconfig.Repository) *Usecase {
	return &Usecase{repo: loans, instRepo: installments, configRepo: configs}
}

type CreateLoanInput struct {
	ClientID   string
	Principal  decimal.Decimal
	TermMonths int // 0 means the configuration's default
	Type       string
}

type UpdateLoanInput struct {
	Principal  decimal.Decimal
	TermMonths int
	Type       string
}

type LoanDTO struct {
	LoanID      string          `json:"loan_id"`
	ClientID    string          `json:"client_id"`
	Principal   decimal.Decimal `json:"principal"`
	AnnualRate  decimal.Decimal `json:"annual_rate"`
	Method      string          `json:"method"`
	TermMonths  int             `json:"term_months"`
	Installment decimal.Decimal `json:"installment"`
	Type        string          `json:"type"`
	State       string          `json:"state"`
	Status      string          `json:"status"`
	Outstanding decimal.Decimal `json:"outstanding"`
	RequestedAt time.Time       `json:"requested_at"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// Create registers a pending loan request. Amount and term are checked
// against the active credit configuration, whose rate and method are
// stored provisionally; approval re-snapshots them and fixes the
// installment for good.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if !reHex32.MatchString(in.ClientID) || !in.Principal.IsPositive() {
		return nil, schedule.ErrInvalidInput
	}

	cfg, err := u.configRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	term := in.TermMonths
	if term == 0 {
		term = cfg.DefaultPeriods
	}
	if !cfg.ValidateAmount(in.Principal) {
		return nil, fmt.Errorf("%w: amount %s outside [%s,%s]",
			creditconfig.ErrInvalidBounds, in.Principal, cfg.MinAmount, cfg.MaxAmount)
	}
	if !cfg.ValidatePeriods(term) {
		return nil, fmt.Errorf("%w: term %d outside [%d,%d]",
			creditconfig.ErrInvalidBounds, term, cfg.MinPeriods, cfg.MaxPeriods)
	}

	// Block if the client already has a pending loan.
	pending, err := u.repo.GetPendingLoanByClientID(ctx, in.ClientID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("client %s already has a pending loan: %s", in.ClientID, pending.LoanID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	payment, err := schedule.ComputeInstallment(in.Principal, cfg.AnnualRate, term, cfg.Method)
	if err != nil {
		return nil, err
	}

	l := &loan.Loan{
		LoanID:         id.New32(),
		ClientID:       in.ClientID,
		Principal:      in.Principal,
		AnnualRate:     cfg.AnnualRate,
		Method:         cfg.Method,
		TermMonths:     term,
		Installment:    payment,
		Type:           loanType(in.Type),
		State:          loan.StatePending,
		StateUpdatedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, l)
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, loan.ErrNotFound
	}
	return u.toDTO(ctx, l)
}

func (u *Usecase) ListByClient(ctx context.Context, clientID string) ([]*LoanDTO, error) {
	ls, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*LoanDTO, 0, len(ls))
	for _, l := range ls {
		dto, err := u.toDTO(ctx, l)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

// Update edits a loan request. Only pending loans may change: an
// approved loan already has a materialized schedule.
func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, loan.ErrNotFound
	}
	if l.State != loan.StatePending {
		return nil, loan.ErrInvalidTransition
	}

	cfg, err := u.configRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	term := in.TermMonths
	if term == 0 {
		term = l.TermMonths
	}
	principal := in.Principal
	if principal.IsZero() {
		principal = l.Principal
	}
	if !cfg.ValidateAmount(principal) || !cfg.ValidatePeriods(term) {
		return nil, fmt.Errorf("%w: amount %s / term %d outside configured limits",
			creditconfig.ErrInvalidBounds, principal, term)
	}

	payment, err := schedule.ComputeInstallment(principal, cfg.AnnualRate, term, cfg.Method)
	if err != nil {
		return nil, err
	}

	l.Principal = principal
	l.TermMonths = term
	l.AnnualRate = cfg.AnnualRate
	l.Method = cfg.Method
	l.Installment = payment
	if in.Type != "" {
		l.Type = loanType(in.Type)
	}
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, l)
}

// Delete removes a loan request; pending state only.
func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return loan.ErrNotFound
	}
	if l.State != loan.StatePending {
		return loan.ErrInvalidTransition
	}
	return u.repo.Delete(ctx, l)
}

// Schedule returns the amortization table for a loan. For an approved
// loan this reproduces the persisted schedule from the snapshotted
// terms; for a pending loan it is a preview.
func (u *Usecase) Schedule(ctx context.Context, loanID string) ([]schedule.Row, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, loan.ErrNotFound
	}
	start := l.RequestedAt
	if l.ApprovedAt != nil {
		start = *l.ApprovedAt
	}
	return schedule.BuildSchedule(l.Principal, l.AnnualRate, l.TermMonths, l.Installment, start)
}

func (u *Usecase) toDTO(ctx context.Context, l *loan.Loan) (*LoanDTO, error) {
	status := loan.Status(l.State)
	outstanding := decimal.Zero
	if l.State == loan.StateApproved {
		rows, err := u.instRepo.ListByLoanID(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		status = DeriveStatus(rows, time.Now().UTC())
		for _, r := range rows {
			outstanding = outstanding.Add(r.Outstanding())
		}
	}
	return &LoanDTO{
		LoanID:      l.LoanID,
		ClientID:    l.ClientID,
		Principal:   l.Principal,
		AnnualRate:  l.AnnualRate,
		Method:      string(l.Method),
		TermMonths:  l.TermMonths,
		Installment: l.Installment,
		Type:        string(l.Type),
		State:       string(l.State),
		Status:      string(status),
		Outstanding: outstanding,
		RequestedAt: l.RequestedAt,
		ApprovedAt:  l.ApprovedAt,
		DueDate:     l.DueDate,
	}, nil
}

// DeriveStatus computes the effective status of an approved loan from
// its installments. Completed and overdue are never written back; they
// are recomputed on every read so they cannot go stale.
func DeriveStatus(rows []*installment.Installment, now time.Time) loan.Status {
	if len(rows) == 0 {
		return loan.StatusActive
	}
	settled := true
	for _, r := range rows {
		if r.Settled() {
			continue
		}
		settled = false
		if r.PastDue(now) {
			return loan.StatusOverdue
		}
	}
	if settled {
		return loan.StatusCompleted
	}
	return loan.StatusActive
}

func loanType(s string) loan.Type {
	switch loan.Type(s) {
	case loan.TypeCommercial, loan.TypeEmergency:
		return loan.Type(s)
	default:
		return loan.TypePersonal
	}
}
