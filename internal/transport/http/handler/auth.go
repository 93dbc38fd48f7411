package handler

import (
	"github.com/gin-gonic/gin"

	"reviewhub/internal/app"
	"reviewhub/internal/logging"
	"reviewhub/internal/transport/http/middleware"
	"reviewhub/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
	log         logging.Logger
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService, log logging.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err, "register failed")
		return
	}

	response.Created(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err, "login failed")
		return
	}

	response.OK(c, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		writeError(c, h.log, err, "logout failed")
		return
	}
	response.OK(c, nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	response.OK(c, user)
}

