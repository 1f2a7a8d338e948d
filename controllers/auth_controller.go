package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hardware-store/backend"
	"hardware-store/models"
	"hardware-store/services"
	"hardware-store/session"
	"hardware-store/utils"
)

type AuthController struct {
	Backend  *backend.Client
	Sessions session.Store
	Rentals  *services.RentalService
}

func (ctrl *AuthController) startSession(c *gin.Context, user models.User) (string, error) {
	sess := session.Session{
		ID:        uuid.NewString(),
		User:      user,
		CreatedAt: time.Now(),
	}
	if err := ctrl.Sessions.SaveSession(c.Request.Context(), sess); err != nil {
		return "", err
	}
	return utils.GenerateToken(user.ID, user.Email, user.Role, sess.ID)
}

// Login godoc
// @Summary User login
// @Description Login against the hardware backend and open a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.Backend.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := ctrl.startSession(c, user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create session"})
		return
	}

	resp := models.LoginResponse{Token: token, User: user}

	// Resume a rental booking that was stashed before the login
	// redirect, exactly as the user entered it.
	if req.IntentID != "" {
		intent, err := ctrl.Rentals.TakeIntent(c.Request.Context(), req.IntentID)
		if err == nil && intent != nil {
			resp.PendingRental = intent
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    resp,
	})
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account on the hardware backend
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.Backend.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := ctrl.startSession(c, user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create session"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    models.LoginResponse{Token: token, User: user},
	})
}

// Logout godoc
// @Summary Log out
// @Description Destroy the current session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID != "" {
		if err := ctrl.Sessions.DeleteSession(c.Request.Context(), sessionID); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to destroy session"})
			return
		}
	}
	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": user})
}

// ChangePassword godoc
// @Summary Change password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} models.Response
// @Router /auth/change-password [post]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.Backend.ChangePassword(c.Request.Context(), user.ID, req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Password changed successfully"})
}
