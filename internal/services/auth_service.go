package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/shecare/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAuthEmailExists    = errors.New("email already exists")
	ErrAuthPasswordHash   = errors.New("hash password failed")
	ErrAuthUserSaveFailed = errors.New("save user failed")
	ErrAuthUserLoadFailed = errors.New("load user failed")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	ReplacePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
	now   func() time.Time
}

func NewAuthService(users AuthUserRepository, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{users: users, now: now}
}

func (service *AuthService) Register(nameRaw string, emailRaw string, passwordRaw string) (models.User, error) {
	name, err := NormalizeUserName(nameRaw)
	if err != nil {
		return models.User{}, err
	}
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserLoadFailed, err)
	}
	if exists {
		return models.User{}, ErrAuthEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrAuthPasswordHash
	}

	user := models.User{
		Name:         name,
		Email:        &email,
		PasswordHash: string(passwordHash),
		CreatedAt:    service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserSaveFailed, err)
	}
	return user, nil
}

// Authenticate hides whether the email or the password was wrong.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserLoadFailed, err)
	}
	if user.IsAnonymous || user.PasswordHash == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) CreateAnonymous() (models.User, error) {
	user := models.User{
		Name:        models.AnonymousUserName,
		IsAnonymous: true,
		CreatedAt:   service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserSaveFailed, err)
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthUserLoadFailed, err)
	}
	return user, nil
}

// ChangePassword verifies the current password and clears a pending forced change.
func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrAuthCredentialsInvalid
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrAuthPasswordHash
	}
	if err := service.users.ReplacePassword(userID, string(passwordHash)); err != nil {
		return fmt.Errorf("%w: %v", ErrAuthUserSaveFailed, err)
	}
	return nil
}
