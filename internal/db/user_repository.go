package db

import (
	"github.com/terraincognita07/shecare/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// withNormalizedEmail matches the expression behind idx_users_email_normalized.
// Anonymous users have no email and never match.
func (repo *UserRepository) withNormalizedEmail(email string) *gorm.DB {
	return repo.database.Model(&models.User{}).Where("email IS NOT NULL AND lower(trim(email)) = ?", email)
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.withNormalizedEmail(email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.withNormalizedEmail(email).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// SetTemporaryPassword stores an operator-issued password and locks the
// account to the change-password flow until the user picks a new one.
func (repo *UserRepository) SetTemporaryPassword(userID uint, passwordHash string) error {
	return repo.updatePassword(userID, passwordHash, true)
}

// ReplacePassword stores a password chosen by the user and lifts a pending
// forced change.
func (repo *UserRepository) ReplacePassword(userID uint, passwordHash string) error {
	return repo.updatePassword(userID, passwordHash, false)
}

func (repo *UserRepository) updatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":        passwordHash,
		"must_change_password": mustChangePassword,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
