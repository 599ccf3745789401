package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/armelhouessou/gotask/internal/model"
)

// UserRepository handles database operations for User
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by UUID
func (r *UserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email. Emails are stored lowercase, so callers
// normalize before lookup.
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces a user's password hash, leaving every other field alone
func (r *UserRepository) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", hashedPassword).Error
}

// ResetPassword replaces the password hash and consumes the authorizing reset
// code in one transaction, so the code can never stay usable after the
// password has changed.
func (r *UserRepository) ResetPassword(userID, otpID uuid.UUID, hashedPassword string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("password", hashedPassword).Error; err != nil {
			return err
		}
		return tx.Model(&model.OTPCode{}).
			Where("id = ?", otpID).
			Update("is_used", true).Error
	})
}

// UpdateProfile applies a partial profile update. Nil fields are skipped.
func (r *UserRepository) UpdateProfile(userID uuid.UUID, firstName, lastName, phoneNumber *string) error {
	updates := map[string]interface{}{}
	if firstName != nil {
		updates["first_name"] = *firstName
	}
	if lastName != nil {
		updates["last_name"] = *lastName
	}
	if phoneNumber != nil {
		updates["phone_number"] = *phoneNumber
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
}

// VerifyEmail marks user's email as verified
func (r *UserRepository) VerifyEmail(userID uuid.UUID) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("is_email_verified", true).Error
}

// Delete removes a user. Owned tasks and OTP codes go with it via the
// ON DELETE CASCADE constraints in the schema.
func (r *UserRepository) Delete(userID uuid.UUID) error {
	return r.db.Where("id = ?", userID).Delete(&model.User{}).Error
}
