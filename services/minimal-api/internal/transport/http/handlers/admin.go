package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cagncvs/minimal-api/pkg/auth"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/transport/http/middlewares"
)

type AdminService interface {
	Insert(ctx context.Context, in domain.NewAdministrator) (*domain.Administrator, error)
	FindByID(ctx context.Context, id int) (*domain.Administrator, error)
	ListAll(ctx context.Context, page int) ([]domain.Administrator, error)
	Login(ctx context.Context, email, password string) (*domain.Administrator, error)
}

type TokenIssuer interface {
	CreateAccessToken(sub, role, email string) (string, *auth.Claims, error)
	TTL() time.Duration
}

// SessionRegistry records issued tokens; nil means tokens are stateless.
type SessionRegistry interface {
	Store(ctx context.Context, jti, email string, ttl time.Duration) error
	Revoke(ctx context.Context, jti string) error
}

type AdminHandler struct {
	svc      AdminService
	tokens   TokenIssuer
	sessions SessionRegistry
	logger   *slog.Logger
}

func NewAdminHandler(svc AdminService, tokens TokenIssuer, sessions SessionRegistry, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, tokens: tokens, sessions: sessions, logger: logger}
}

type adminView struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

type loggedAdmin struct {
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
	Token  string `json:"token"`
}

func toAdminView(a domain.Administrator) adminView {
	return adminView{ID: a.ID, Email: a.Email, Perfil: string(a.Role)}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required"`
		Senha string `json:"senha" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	a, err := h.svc.Login(c.Request.Context(), in.Email, in.Senha)
	if err != nil {
		h.logger.Error("login failed", "error", err)
		internalError(c)
		return
	}
	if a == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, claims, err := h.tokens.CreateAccessToken(strconv.Itoa(a.ID), string(a.Role), a.Email)
	if err != nil {
		h.logger.Error("issue token failed", "admin_id", a.ID, "error", err)
		internalError(c)
		return
	}
	if h.sessions != nil {
		if err := h.sessions.Store(c.Request.Context(), claims.ID, a.Email, h.tokens.TTL()); err != nil {
			h.logger.Error("store session failed", "admin_id", a.ID, "error", err)
			internalError(c)
			return
		}
	}

	h.logger.Info("login successful", "admin_id", a.ID, "email", a.Email)
	c.JSON(http.StatusOK, loggedAdmin{Email: a.Email, Perfil: string(a.Role), Token: token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	claims, ok := middlewares.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	if h.sessions != nil {
		if err := h.sessions.Revoke(c.Request.Context(), claims.ID); err != nil {
			h.logger.Error("revoke session failed", "email", claims.Email, "error", err)
			internalError(c)
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) Create(c *gin.Context) {
	var in struct {
		Email  string `json:"email" binding:"required,email"`
		Senha  string `json:"senha" binding:"required"`
		Perfil string `json:"perfil" binding:"omitempty,oneof=Adm Editor"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	role := domain.Role(in.Perfil)
	if role == "" {
		role = domain.RoleEditor
	}

	a, err := h.svc.Insert(c.Request.Context(), domain.NewAdministrator{Email: in.Email, Password: in.Senha, Role: role})
	if errors.Is(err, domain.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("create administrator failed", "email", in.Email, "error", err)
		internalError(c)
		return
	}
	c.Header("Location", "/administradores/"+strconv.Itoa(a.ID))
	c.JSON(http.StatusCreated, toAdminView(*a))
}

func (h *AdminHandler) List(c *gin.Context) {
	list, err := h.svc.ListAll(c.Request.Context(), queryPage(c))
	if err != nil {
		h.logger.Error("list administrators failed", "error", err)
		internalError(c)
		return
	}
	out := make([]adminView, 0, len(list))
	for _, a := range list {
		out = append(out, toAdminView(a))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("find administrator failed", "admin_id", id, "error", err)
		internalError(c)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "administrator not found"})
		return
	}
	c.JSON(http.StatusOK, toAdminView(*a))
}
