package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/usecase"
	res "github.com/legal-connect/backend/pkg/http"
)

type ClientHandler struct {
	service usecase.ClientService
}

func NewClientHandler(s usecase.ClientService) *ClientHandler { return &ClientHandler{service: s} }

func (h *ClientHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profiles)
}

func (h *ClientHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profile)
}

func (h *ClientHandler) Update(c echo.Context) error {
	req := new(usecase.ClientUpdate)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c))
	}
	requesterID := c.Get("user_id").(string)
	profile, err := h.service.Update(c.Request().Context(), c.Param("id"), requesterID, *req)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profile)
}
