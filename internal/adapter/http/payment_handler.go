package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"microloan-backend/internal/usecase/payment"
)

type PaymentHandler struct {
	uc      *payment.Usecase
	queries *payment.Queries
}

func NewPaymentHandler(uc *payment.Usecase, queries *payment.Queries) *PaymentHandler {
	return &PaymentHandler{uc: uc, queries: queries}
}

type registerPaymentReq struct {
	LoanID      string  `json:"loan_id" validate:"required,hex32"`
	Amount      float64 `json:"amount" validate:"required,gt=0,dec2"`
	Method      string  `json:"method" validate:"omitempty,oneof=cash transfer cheque card"`
	JournalCode string  `json:"journal_code" validate:"omitempty,max=20"`
	Reference   string  `json:"reference" validate:"omitempty,max=100"`
	Note        string  `json:"note"`
}

func (h *PaymentHandler) RegisterPayment(c echo.Context) error {
	var req registerPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Register(c.Request().Context(), payment.RegisterInput{
		LoanID:      req.LoanID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Method:      req.Method,
		JournalCode: req.JournalCode,
		Reference:   req.Reference,
		Note:        req.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	dto, err := h.queries.Get(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) ListLoanPayments(c echo.Context) error {
	dtos, err := h.queries.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
