package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"microloan-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	ClientID   string  `json:"client_id" validate:"required,hex32"`
	Principal  float64 `json:"principal" validate:"required,gt=0,dec2"`
	TermMonths int     `json:"term_months" validate:"omitempty,gte=1"`
	Type       string  `json:"type" validate:"omitempty,oneof=personal commercial emergency"`
}

type updateLoanReq struct {
	Principal  float64 `json:"principal" validate:"omitempty,gt=0,dec2"`
	TermMonths int     `json:"term_months" validate:"omitempty,gte=1"`
	Type       string  `json:"type" validate:"omitempty,oneof=personal commercial emergency"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		ClientID:   req.ClientID,
		Principal:  decimal.NewFromFloat(req.Principal),
		TermMonths: req.TermMonths,
		Type:       req.Type,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListClientLoans(c echo.Context) error {
	dtos, err := h.uc.ListByClient(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("loan_id"), loan.UpdateLoanInput{
		Principal:  decimal.NewFromFloat(req.Principal),
		TermMonths: req.TermMonths,
		Type:       req.Type,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSchedule returns the amortization table; a preview for pending
// loans, the materialized terms for approved ones.
func (h *LoanHandler) GetSchedule(c echo.Context) error {
	rows, err := h.uc.Schedule(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
