package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
)

type AuthHandler struct {
	service *services.AuthService
	tokens  *services.TokenService
	logger  *zap.SugaredLogger
}

func NewAuthHandler(service *services.AuthService, tokens *services.TokenService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type federatedRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Provider string `json:"provider" binding:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	SignIn    string    `json:"sign_in"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	User  userResponse          `json:"user"`
	Token *services.IssuedToken `json:"token"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
	if u.Credential != nil {
		resp.SignIn = u.Credential.Kind()
	}
	return resp
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/federated", h.Federated)
	}
}

// Register godoc
// @Summary     Create a password account
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     registerRequest true "account"
// @Success     201  {object} sessionResponse
// @Failure     400  {object} errorResponse
// @Failure     409  {object} errorResponse
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.respondWithSession(c, http.StatusCreated, user)
}

// Login godoc
// @Summary     Sign in with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     loginRequest true "credentials"
// @Success     200  {object} sessionResponse
// @Failure     401  {object} errorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.respondWithSession(c, http.StatusOK, user)
}

// Federated godoc
// @Summary     Sign in through an external identity provider
// @Description Creates the account on first use. Emails registered with a password are rejected.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     federatedRequest true "identity"
// @Success     200  {object} sessionResponse
// @Failure     409  {object} errorResponse
// @Router      /auth/federated [post]
func (h *AuthHandler) Federated(c *gin.Context) {
	var req federatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.FederatedLogin(c.Request.Context(), services.FederatedInput{
		Email:    req.Email,
		Name:     req.Name,
		Provider: req.Provider,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.respondWithSession(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, user *domain.User) {
	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(status, sessionResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}
