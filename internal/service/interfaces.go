package service

import (
	"github.com/google/uuid"

	"github.com/armelhouessou/gotask/internal/model"
	"github.com/armelhouessou/gotask/internal/repository"
	"github.com/armelhouessou/gotask/pkg/auth"
)

// Store contracts consumed by the services. The concrete GORM repositories
// satisfy them; tests swap in fakes.

type UserStore interface {
	Create(user *model.User) error
	FindByID(id uuid.UUID) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	UpdatePassword(userID uuid.UUID, hashedPassword string) error
	ResetPassword(userID, otpID uuid.UUID, hashedPassword string) error
	UpdateProfile(userID uuid.UUID, firstName, lastName, phoneNumber *string) error
	VerifyEmail(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
}

type OTPStore interface {
	Issue(userID uuid.UUID, purpose model.OTPPurpose, channel model.OTPChannel) (*model.OTPCode, error)
	FindLatestValid(userID uuid.UUID, code string, purpose model.OTPPurpose) (*model.OTPCode, error)
	MarkAsUsed(otpID uuid.UUID) error
}

type TaskStore interface {
	Create(task *model.Task) error
	FindByID(authorID, taskID uuid.UUID) (*model.Task, error)
	List(authorID uuid.UUID, filter repository.TaskFilter) ([]model.Task, int64, error)
	UpdateFields(authorID, taskID uuid.UUID, updates map[string]interface{}) error
	Delete(authorID, taskID uuid.UUID) error
}

// TokenIssuer mints signed token pairs for an authenticated identity.
type TokenIssuer interface {
	GeneratePair(userID uuid.UUID, email string) (*auth.TokenPair, error)
}

// Mailer is the email-dispatch collaborator. Delivery failure is reported,
// never fatal to state already persisted.
type Mailer interface {
	SendPasswordReset(toEmail, fullName, code string, expiryMinutes int) error
	SendVerificationCode(toEmail, fullName, code string, expiryMinutes int) error
}
