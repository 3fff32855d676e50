package v1

import (
	"net/http"

	"talentai-backend/config"
	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC, config: cfg}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.POST("/assign-role", handler.AssignRole)
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=candidate company"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with email, username, password, and role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", user)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password; returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(apperror.NotFound("User not found"))
		return
	}

	response.Success(c, http.StatusOK, "Current user retrieved", user)
}

type AssignRoleRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=candidate company admin"`
}

// AssignRole godoc
// @Summary      Assign a role to a user
// @Description  Admin only. Changes the target user's role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      AssignRoleRequest  true  "Target user and role"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /auth/assign-role [post]
// @Security     BearerAuth
func (h *AuthHandler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.AssignRole(c.Request.Context(), req.UserID, req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Role assigned", nil)
}
