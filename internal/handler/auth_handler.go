package handler

import (
	"net/http"

	"payetonkawa/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// /auth のHTTP。メール照合だけの簡易ログイン（パスワードは無い）。
type AuthHandler struct {
	stores *Stores
}

// DI
func NewAuthHandler(stores *Stores) *AuthHandler {
	return &AuthHandler{stores: stores}
}

type LoginRequest struct {
	Email string `json:"email"`
}

type RegisterRequest struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Adresse   string `json:"adresse"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/login", h.login)
	e.POST("/auth/register", h.register)
	e.POST("/auth/logout", h.logout)
	e.GET("/auth/me", h.me)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email is required"})
	}

	user, err := h.stores.Session(c).Login(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email is required"})
	}

	user, err := h.stores.Session(c).Register(c.Request().Context(), model.CustomerCreate{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Telephone: req.Telephone,
		Adresse:   req.Adresse,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.stores.Session(c).Logout(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) me(c echo.Context) error {
	user, ok := h.stores.Session(c).CurrentUser(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}
	return c.JSON(http.StatusOK, user)
}
