package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// dummyHash is compared against when a username does not exist, so unknown
// users and wrong passwords take the same time to reject.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("fintrack-dummy-password"), bcrypt.DefaultCost)

// userService handles user-related business logic.
type userService struct {
	db   *gorm.DB
	cost int
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db, cost: bcrypt.DefaultCost}
}

// NewUserServiceWithCost creates a UserServicer with a custom bcrypt cost.
// Tests use bcrypt.MinCost to stay fast.
func NewUserServiceWithCost(db *gorm.DB, cost int) UserServicer {
	return &userService{db: db, cost: cost}
}

// CreateUser registers a new user and seeds the default categories in the
// same database transaction.
func (s *userService) CreateUser(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", username, email).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateUser
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateUser
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		categories := make([]models.Category, len(models.DefaultCategories))
		for i, def := range models.DefaultCategories {
			categories[i] = models.Category{UserID: user.ID, Name: def.Name, Color: def.Color}
		}
		if err := tx.Create(&categories).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// VerifyUser checks a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *userService) VerifyUser(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
