package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"farmsoc-api/config"
	"farmsoc-api/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	user.ID = uuid.NewString()
	now := time.Now()
	return config.DB.QueryRow(
		context.Background(),
		query,
		user.ID,
		user.Email,
		user.Password,
		user.Role,
		now,
		now,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE email = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE id = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) UpdateRole(id, role string) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`,
		role, time.Now(), id)
	return err
}

func (r *UserRepository) UpdatePassword(id, hashedPassword string) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`,
		hashedPassword, time.Now(), id)
	return err
}

func (r *UserRepository) CreateProfile(profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, user_id, full_name, phone, location, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	profile.ID = uuid.NewString()
	now := time.Now()
	return config.DB.QueryRow(
		context.Background(),
		query,
		profile.ID,
		profile.UserID,
		profile.FullName,
		profile.Phone,
		profile.Location,
		profile.AvatarURL,
		now,
		now,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *UserRepository) GetProfile(userID string) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, full_name, phone, location, avatar_url, created_at, updated_at
		FROM user_profiles WHERE user_id = $1
	`

	profile := &models.UserProfile{}
	err := config.DB.QueryRow(context.Background(), query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Phone,
		&profile.Location,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *UserRepository) UpdateProfile(profile *models.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET full_name = $1, phone = $2, location = $3, avatar_url = $4, updated_at = $5
		WHERE user_id = $6
	`
	_, err := config.DB.Exec(context.Background(), query,
		profile.FullName,
		profile.Phone,
		profile.Location,
		profile.AvatarURL,
		time.Now(),
		profile.UserID,
	)
	return err
}

func (r *UserRepository) GetUserWithProfile(userID string) (*models.UserWithProfile, error) {
	query := `
		SELECT u.id, u.email, u.role,
		       COALESCE(p.full_name, ''), COALESCE(p.phone, ''),
		       COALESCE(p.location, ''), COALESCE(p.avatar_url, ''),
		       u.created_at
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.id = $1
	`

	user := &models.UserWithProfile{}
	err := config.DB.QueryRow(context.Background(), query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.Location,
		&user.AvatarURL,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// EnsureFarmer creates the farmer profile row backing a farmer account.
// Products, events and feed posts key on farmers.id, which for accounts is
// the user id. Idempotent.
func (r *UserRepository) EnsureFarmer(userID, name, location string) error {
	_, err := config.DB.Exec(
		context.Background(),
		`INSERT INTO farmers (id, name, location) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO NOTHING`,
		userID, name, location,
	)
	return err
}
