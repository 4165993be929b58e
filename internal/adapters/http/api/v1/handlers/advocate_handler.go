package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/usecase"
	res "github.com/legal-connect/backend/pkg/http"
)

type AdvocateHandler struct {
	service usecase.AdvocateService
}

func NewAdvocateHandler(s usecase.AdvocateService) *AdvocateHandler {
	return &AdvocateHandler{service: s}
}

type addReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *AdvocateHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profiles)
}

func (h *AdvocateHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, profile)
}

func (h *AdvocateHandler) UpdateProfile(c echo.Context) error {
	req := new(usecase.AdvocateUpdate)
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

func (h *AdvocateHandler) AddReview(c echo.Context) error {
	req := new(addReviewRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c))
	}
	reviewerID := c.Get("user_id").(string)
	if err := h.service.AddReview(c.Request().Context(), c.Param("id"), reviewerID, req.Rating, req.Comment); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "review added"})
}
