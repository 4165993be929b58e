package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/domain"
	"github.com/legal-connect/backend/internal/usecase"
	res "github.com/legal-connect/backend/pkg/http"
)

type InternHandler struct {
	service usecase.InternService
}

func NewInternHandler(s usecase.InternService) *InternHandler { return &InternHandler{service: s} }

func (h *InternHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profiles)
}

func (h *InternHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profile)
}

func (h *InternHandler) UpdateProfile(c echo.Context) error {
	req := new(usecase.InternUpdate)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c))
	}
	userID := c.Get("user_id").(string)
	profile, err := h.service.UpdateProfile(c.Request().Context(), userID, *req)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profile)
}

func (h *InternHandler) AddAchievement(c echo.Context) error {
	req := new(domain.Achievement)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c))
	}
	userID := c.Get("user_id").(string)
	if err := h.service.AddAchievement(c.Request().Context(), userID, *req); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "achievement added"})
}

func (h *InternHandler) AddCertification(c echo.Context) error {
	req := new(domain.Certification)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c))
	}
	userID := c.Get("user_id").(string)
	if err := h.service.AddCertification(c.Request().Context(), userID, *req); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "certification added"})
}
