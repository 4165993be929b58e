package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/usecase"
	res "github.com/legal-connect/backend/pkg/http"
)

type UserHandler struct {
	service usecase.UserService
}

func NewUserHandler(s usecase.UserService) *UserHandler { return &UserHandler{service: s} }

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(string)
	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	req := new(usecase.UserUpdate)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c))
	}
	userID := c.Get("user_id").(string)
	user, err := h.service.UpdateProfile(c.Request().Context(), userID, *req)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, user)
}
