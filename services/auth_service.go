package services

import (
	"errors"
	"log"

	"farmsoc-api/models"
	"farmsoc-api/repositories"
	"farmsoc-api/utils"
)

type AuthService struct {
	userRepo *repositories.UserRepository
	email    *models.EmailService
}

func NewAuthService() *AuthService {
	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		emailService = nil
	}

	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		email:    emailService,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, _ := s.userRepo.FindByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleConsumer
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:   user.ID,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	if err := s.userRepo.CreateProfile(profile); err != nil {
		return nil, err
	}

	if role == models.RoleFarmer {
		if err := s.userRepo.EnsureFarmer(user.ID, req.FullName, ""); err != nil {
			return nil, err
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if s.email != nil {
		go func() {
			if err := s.email.SendWelcomeEmail(user.Email, req.FullName); err != nil {
				log.Println("Failed to send welcome email:", err)
			}
		}()
	}

	userWithProfile, err := s.userRepo.GetUserWithProfile(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.userRepo.GetUserWithProfile(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func (s *AuthService) GetProfile(userID string) (*models.UserWithProfile, error) {
	return s.userRepo.GetUserWithProfile(userID)
}

func (s *AuthService) UpdateProfile(userID string, req models.UpdateProfileRequest) error {
	profile, err := s.userRepo.GetProfile(userID)
	if err != nil {
		return err
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Location != "" {
		profile.Location = req.Location
	}

	return s.userRepo.UpdateProfile(profile)
}

// SetRole backs the role-selection screen shown after sign-up. The new role
// takes effect on the next issued token.
func (s *AuthService) SetRole(userID, role string) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		return "", err
	}

	if role == models.RoleFarmer {
		profile, err := s.userRepo.GetUserWithProfile(userID)
		if err != nil {
			return "", err
		}
		if err := s.userRepo.EnsureFarmer(userID, profile.FullName, profile.Location); err != nil {
			return "", err
		}
	}

	return utils.GenerateToken(user.ID, user.Email, role)
}

func (s *AuthService) ChangePassword(userID string, req models.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return errors.New("invalid old password")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, hashedPassword)
}
