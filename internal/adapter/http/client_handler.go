package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/usecase/client"
)

type ClientHandler struct{ uc *client.Usecase }

func NewClientHandler(uc *client.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

type registerClientReq struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	NationalID string `json:"national_id" validate:"required,max=20"`
	Phone      string `json:"phone" validate:"omitempty,max=15"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	BirthDate  string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *ClientHandler) RegisterClient(c echo.Context) error {
	var req registerClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	var birth *time.Time
	if req.BirthDate != "" {
		t, _ := time.Parse("2006-01-02", req.BirthDate)
		birth = &t
	}

	dto, err := h.uc.Register(c.Request().Context(), client.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		BirthDate:  birth,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	if q := c.QueryParam("q"); q != "" {
		dtos, err := h.uc.Search(c.Request().Context(), q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
