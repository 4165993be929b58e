package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/adapters/storage"
	"github.com/legal-connect/backend/internal/usecase"
	res "github.com/legal-connect/backend/pkg/http"
)

// documentSlots are the multipart file fields a registration may carry.
var documentSlots = []string{"idProofFront", "idProofBack", "lawDegree", "studentId", "resume"}

type AuthHandler struct {
	registration usecase.RegistrationService
	auth         usecase.AuthService
	docs         storage.Store
}

func NewAuthHandler(registration usecase.RegistrationService, auth usecase.AuthService, docs storage.Store) *AuthHandler {
	return &AuthHandler{registration: registration, auth: auth, docs: docs}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles the multipart registration submission: the "data" field
// is the role-tagged JSON form, the remaining fields are document uploads.
func (h *AuthHandler) Register(c echo.Context) error {
	var form usecase.RegisterForm
	if err := json.Unmarshal([]byte(c.FormValue("data")), &form); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid form data", requestIDFromCtx(c))
	}

	docs, err := h.saveDocuments(c)
	if err != nil {
		return serviceError(c, err)
	}

	result, err := h.registration.Register(c.Request().Context(), requestIDFromCtx(c), form, docs)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// saveDocuments persists every submitted slot through the document store.
// If one slot fails, the slots saved before it are cleaned up.
func (h *AuthHandler) saveDocuments(c echo.Context) (usecase.DocumentRefs, error) {
	var docs usecase.DocumentRefs
	targets := map[string]*string{
		"idProofFront": &docs.IDProofFront,
		"idProofBack":  &docs.IDProofBack,
		"lawDegree":    &docs.LawDegree,
		"studentId":    &docs.StudentID,
		"resume":       &docs.Resume,
	}
	for _, slot := range documentSlots {
		file, err := c.FormFile(slot)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			h.docs.Cleanup(docs.All())
			return usecase.DocumentRefs{}, err
		}
		ref, err := h.docs.Save(slot, file)
		if err != nil {
			h.docs.Cleanup(docs.All())
			return usecase.DocumentRefs{}, err
		}
		*targets[slot] = ref
	}
	return docs, nil
}

func (h *AuthHandler) Login(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c))
	}
	result, err := h.auth.Login(c.Request().Context(), requestIDFromCtx(c), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID := c.Get("user_id").(string)
	user, err := h.auth.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, user)
}
