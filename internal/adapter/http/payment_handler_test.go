package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"microloan-backend/internal/domain/installment"
	domain "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/internal/testutil/installmentmock"
	"microloan-backend/internal/testutil/journalmock"
	"microloan-backend/internal/testutil/loanmock"
	"microloan-backend/internal/testutil/paymentmock"
	"microloan-backend/internal/testutil/uowmock"
	uc "microloan-backend/internal/usecase/payment"
)

func paymentRepos(l *domain.Loan, installments []*installment.Installment) uow.Repos {
	return uow.Repos{
		Loans: &loanmock.Repo{
			GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*domain.Loan, error) {
				if l == nil || l.LoanID != loanID {
					return nil, gorm.ErrRecordNotFound
				}
				return l, nil
			},
		},
		Installments: &installmentmock.Repo{
			ListOutstandingByLoanIDForUpdateFn: func(ctx context.Context, id uint64) ([]*installment.Installment, error) {
				var out []*installment.Installment
				for _, inst := range installments {
					if inst.State == installment.StatePending || inst.State == installment.StatePartial {
						out = append(out, inst)
					}
				}
				return out, nil
			},
			SaveFn: func(ctx context.Context, i *installment.Installment) error { return nil },
		},
		Payments: &paymentmock.Repo{
			CreateFn: func(ctx context.Context, p *domainPayment.Record) error {
				p.ID = 1
				return nil
			},
			CreateDetailFn: func(ctx context.Context, d *domainPayment.Detail) error { return nil },
		},
		Journals: &journalmock.Repo{},
	}
}

func registerRequest(e *echo.Echo, body any) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(stdhttp.MethodPost, "/payments", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterPayment_Success(t *testing.T) {
	e := newEchoWithValidator()
	loanID := strings.Repeat("a", 32)
	l := &domain.Loan{ID: 3, LoanID: loanID, ClientID: strings.Repeat("b", 32), State: domain.StateApproved}
	installments := []*installment.Installment{
		{ID: 1, LoanID: 3, Sequence: 1, Amount: decimal.NewFromInt(100), State: installment.StatePending},
		{ID: 2, LoanID: 3, Sequence: 2, Amount: decimal.NewFromInt(100), State: installment.StatePending},
	}
	h := NewPaymentHandler(uc.NewUsecase(uowmock.Passthrough(paymentRepos(l, installments))), nil)

	c, rec := registerRequest(e, map[string]any{
		"loan_id": loanID,
		"amount":  150,
		"method":  "cash",
	})
	if err := h.RegisterPayment(c); err != nil {
		t.Fatalf("RegisterPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.PaymentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.Applied.Equal(decimal.NewFromInt(150)) || !got.Discarded.IsZero() {
		t.Fatalf("applied=%s discarded=%s", got.Applied, got.Discarded)
	}
	if len(got.Allocations) != 2 {
		t.Fatalf("want 2 allocations, got %d", len(got.Allocations))
	}
	if got.Allocations[0].ResultingState != string(installment.StateCompleted) ||
		got.Allocations[1].ResultingState != string(installment.StatePartial) {
		t.Fatalf("allocation states: %+v", got.Allocations)
	}
}

func TestRegisterPayment_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(uc.NewUsecase(uowmock.New()), nil)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing loan id", map[string]any{"amount": 100}},
		{"loan id not hex32", map[string]any{"loan_id": "XYZ", "amount": 100}},
		{"amount three decimals", map[string]any{"loan_id": strings.Repeat("a", 32), "amount": 100.001}},
		{"amount negative", map[string]any{"loan_id": strings.Repeat("a", 32), "amount": -5}},
		{"unknown method", map[string]any{"loan_id": strings.Repeat("a", 32), "amount": 100, "method": "barter"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := registerRequest(e, tc.body)
			if err := h.RegisterPayment(c); err != nil {
				t.Fatalf("RegisterPayment error: %v", err)
			}
			if rec.Code != stdhttp.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRegisterPayment_LoanNotApproved(t *testing.T) {
	e := newEchoWithValidator()
	loanID := strings.Repeat("a", 32)
	l := &domain.Loan{LoanID: loanID, State: domain.StatePending}
	h := NewPaymentHandler(uc.NewUsecase(uowmock.Passthrough(paymentRepos(l, nil))), nil)

	c, rec := registerRequest(e, map[string]any{
		"loan_id": loanID,
		"amount":  100,
	})
	if err := h.RegisterPayment(c); err != nil {
		t.Fatalf("RegisterPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409, body: %s", rec.Code, rec.Body.String())
	}
}

func TestGetPayment_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	payments := &paymentmock.Repo{
		GetByPaymentIDFn: func(ctx context.Context, paymentID string) (*domainPayment.Record, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewPaymentHandler(nil, uc.NewQueries(payments, &loanmock.Repo{}, &installmentmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/payments/"+strings.Repeat("f", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("payment_id")
	c.SetParamValues(strings.Repeat("f", 32))

	if err := h.GetPayment(c); err != nil {
		t.Fatalf("GetPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
