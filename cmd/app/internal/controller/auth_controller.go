package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/model"
	"serenity-backend/internal/service"
	"serenity-backend/utilities"
)

type AuthController struct {
	AuthService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register handles POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	user := &model.User{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Password: req.Password}
	if err := ac.AuthService.Register(user); err != nil {
		respondError(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

// Login handles POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	user, err := ac.AuthService.Login(creds.Email, creds.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	accessToken, refreshToken, err := utilities.GenerateTokens(user)
	if err != nil {
		respondError(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

// Refresh handles POST /auth/refresh
func (ac *AuthController) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	accessToken, refreshToken, err := utilities.RefreshTokens(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken, "refresh_token": refreshToken})
}
