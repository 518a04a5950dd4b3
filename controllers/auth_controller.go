package controllers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sopejohn/freshmart/config"
	"github.com/Sopejohn/freshmart/middleware"
)

const adminTokenTTL = 12 * time.Hour

type AuthController struct {
	Config *config.Config
	Logger *zap.Logger
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks the configured admin credentials and issues a bearer token
// for the admin data routes.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(ac.Config.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(ac.Config.AdminPassword)) == 1
	if !emailOK || !passOK {
		ac.Logger.Warn("Admin login rejected", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateAdminToken(ac.Config.JWTSecret, ac.Config.AdminEmail, ac.Config.AdminName, adminTokenTTL)
	if err != nil {
		ac.Logger.Error("Failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "name": ac.Config.AdminName})
}
