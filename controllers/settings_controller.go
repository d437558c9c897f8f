package controllers

import (
	"github.com/gin-gonic/gin"

	"farmsoc-api/models"
	"farmsoc-api/repositories"
)

type SettingsController struct {
	userRepo *repositories.UserRepository
}

func NewSettingsController() *SettingsController {
	return &SettingsController{userRepo: repositories.NewUserRepository()}
}

func boolPtr(b bool) *bool { return &b }

// @Summary Get settings menu
// @Description Settings screen definition: each item is a tagged variant (navigate, switch or input)
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /settings [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	userID := c.GetString("user_id")

	fullName := ""
	phone := ""
	if profile, err := ctrl.userRepo.GetUserWithProfile(userID); err == nil {
		fullName = profile.FullName
		phone = profile.Phone
	}

	sections := []models.SettingsSection{
		{
			Title: "Account",
			Items: []models.SettingsItem{
				{Kind: models.SettingsInput, Label: "Full Name", Icon: "user", Value: fullName},
				{Kind: models.SettingsInput, Label: "Phone", Icon: "phone", Value: phone},
				{Kind: models.SettingsNavigate, Label: "Change Password", Icon: "lock", Route: "/auth/change-password"},
			},
		},
		{
			Title: "Notifications",
			Items: []models.SettingsItem{
				{Kind: models.SettingsSwitch, Label: "Order Updates", Icon: "bell", Enabled: boolPtr(true)},
				{Kind: models.SettingsSwitch, Label: "New Followers", Icon: "users", Enabled: boolPtr(true)},
				{Kind: models.SettingsSwitch, Label: "Event Reminders", Icon: "calendar", Enabled: boolPtr(false)},
			},
		},
		{
			Title: "About",
			Items: []models.SettingsItem{
				{Kind: models.SettingsNavigate, Label: "Help & Support", Icon: "help-circle", Route: "/support"},
				{Kind: models.SettingsNavigate, Label: "Privacy Policy", Icon: "shield", Route: "/privacy"},
			},
		},
	}

	c.JSON(200, gin.H{"success": true, "message": "Settings retrieved successfully", "data": sections})
}
