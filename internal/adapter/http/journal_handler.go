package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/usecase/journal"
)

type JournalHandler struct{ uc *journal.Usecase }

func NewJournalHandler(uc *journal.Usecase) *JournalHandler { return &JournalHandler{uc: uc} }

type createJournalReq struct {
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type toggleJournalReq struct {
	Active bool `json:"active"`
}

func (h *JournalHandler) CreateJournal(c echo.Context) error {
	var req createJournalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), journal.CreateJournalInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *JournalHandler) GetJournal(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *JournalHandler) ListJournals(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *JournalHandler) ToggleJournal(c echo.Context) error {
	var req toggleJournalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	dto, err := h.uc.Toggle(c.Request().Context(), c.Param("code"), req.Active)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
