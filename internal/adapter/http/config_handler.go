package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"microloan-backend/internal/usecase/creditconfig"
)

type ConfigHandler struct{ uc *creditconfig.Usecase }

func NewConfigHandler(uc *creditconfig.Usecase) *ConfigHandler { return &ConfigHandler{uc: uc} }

type configReq struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Description    string  `json:"description"`
	AnnualRate     float64 `json:"annual_rate" validate:"gte=0,lte=100,dec2"`
	Method         string  `json:"method" validate:"required,oneof=standard french german american"`
	DefaultPeriods int     `json:"default_periods" validate:"required,gte=1"`
	MinAmount      float64 `json:"min_amount" validate:"gt=0,dec2"`
	MaxAmount      float64 `json:"max_amount" validate:"gt=0,dec2"`
	MinPeriods     int     `json:"min_periods" validate:"required,gte=1"`
	MaxPeriods     int     `json:"max_periods" validate:"required,gte=1"`
	OpeningFeePct  float64 `json:"opening_fee_pct" validate:"gte=0,dec2"`
	AdminFee       float64 `json:"admin_fee" validate:"gte=0,dec2"`
	ExtraPayments  bool    `json:"extra_payments"`
}

func (r configReq) toInput() creditconfig.CreateConfigInput {
	return creditconfig.CreateConfigInput{
		Name:           r.Name,
		Description:    r.Description,
		AnnualRate:     decimal.NewFromFloat(r.AnnualRate),
		Method:         r.Method,
		DefaultPeriods: r.DefaultPeriods,
		MinAmount:      decimal.NewFromFloat(r.MinAmount),
		MaxAmount:      decimal.NewFromFloat(r.MaxAmount),
		MinPeriods:     r.MinPeriods,
		MaxPeriods:     r.MaxPeriods,
		OpeningFeePct:  decimal.NewFromFloat(r.OpeningFeePct),
		AdminFee:       decimal.NewFromFloat(r.AdminFee),
		ExtraPayments:  r.ExtraPayments,
	}
}

func (h *ConfigHandler) CreateConfig(c echo.Context) error {
	var req configReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ConfigHandler) UpdateConfig(c echo.Context) error {
	var req configReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("config_id"), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ActivateConfig makes one configuration the policy for new loans,
// deactivating the rest in the same transaction.
func (h *ConfigHandler) ActivateConfig(c echo.Context) error {
	dto, err := h.uc.Activate(c.Request().Context(), c.Param("config_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ConfigHandler) GetConfig(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("config_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ConfigHandler) GetActiveConfig(c echo.Context) error {
	dto, err := h.uc.GetActive(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ConfigHandler) ListConfigs(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
