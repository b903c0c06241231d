package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type approveReq struct {
	ApprovedBy string `json:"approved_by" validate:"omitempty,hex32"`
}

func (h *ApprovalHandler) ApproveLoan(c echo.Context) error {
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Approve(c.Request().Context(), approval.ApproveInput{
		LoanID:     c.Param("loan_id"),
		ApprovedBy: req.ApprovedBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) RejectLoan(c echo.Context) error {
	if err := h.uc.Reject(c.Request().Context(), c.Param("loan_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"loan_id": c.Param("loan_id"), "state": "rejected"})
}
