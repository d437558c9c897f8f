package controllers

import (
	"github.com/gin-gonic/gin"

	"farmsoc-api/cart"
	"farmsoc-api/models"
	"farmsoc-api/services"
)

type AuthController struct {
	auth  *services.AuthService
	carts *cart.Manager
}

func NewAuthController(auth *services.AuthService, carts *cart.Manager) *AuthController {
	return &AuthController{auth: auth, carts: carts}
}

// Register godoc
// @Summary Register new user
// @Description Register a new account with an optional role (consumer, farmer or influencer)
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
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	result, err := ctrl.auth.Register(req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Registration successful", "data": result})
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password
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
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	result, err := ctrl.auth.Login(req)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": result})
}

// Logout godoc
// @Summary Logout
// @Description End the session. The in-memory cart is dropped; its last persisted snapshot is kept for the next sign-in
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	ctrl.carts.Release(userID)

	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// SetRole godoc
// @Summary Select role
// @Description Set the account role from the role-selection screen and issue a fresh token
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SetRoleRequest true "Role"
// @Success 200 {object} models.Response
// @Router /auth/role [post]
func (ctrl *AuthController) SetRole(c *gin.Context) {
	var req models.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	token, err := ctrl.auth.SetRole(userID, req.Role)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update role"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Role updated",
		"data":    gin.H{"role": req.Role, "token": token},
	})
}

// GetProfile godoc
// @Summary Get profile
// @Description Get the signed-in user's profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := ctrl.auth.GetProfile(userID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Profile not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved successfully", "data": profile})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update name, phone or location
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	if err := ctrl.auth.UpdateProfile(userID, req); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile updated successfully"})
}

// ChangePassword godoc
// @Summary Change password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Passwords"
// @Success 200 {object} models.Response
// @Router /auth/change-password [post]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	if err := ctrl.auth.ChangePassword(userID, req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Password changed successfully"})
}
