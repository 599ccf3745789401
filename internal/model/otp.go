package model

import (
	"time"

	"github.com/google/uuid"
)

// OTPChannel is the delivery channel a code was issued for
type OTPChannel string

const (
	OTPChannelEmail OTPChannel = "email"
	OTPChannelSMS   OTPChannel = "sms"
)

// OTPPurpose defines what the OTP code is used for
type OTPPurpose string

const (
	OTPPurposePasswordReset     OTPPurpose = "password_reset"
	OTPPurposeEmailVerification OTPPurpose = "email_verification"
	OTPPurposePhoneVerification OTPPurpose = "phone_verification"
)

// OTPCodeLength is the fixed number of digits in a generated code.
const OTPCodeLength = 6

// OTPTTL is how long a code stays valid after creation.
const OTPTTL = 10 * time.Minute

// OTPCode is a one-time password tied to a single user and purpose.
// A code transitions valid -> used or valid -> expired and never back.
type OTPCode struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Code      string     `json:"-" gorm:"size:6;not null"`
	Channel   OTPChannel `json:"channel" gorm:"size:10;default:'email'"`
	Purpose   OTPPurpose `json:"purpose" gorm:"size:30;default:'password_reset';index"`
	IsUsed    bool       `json:"is_used" gorm:"default:false"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// IsExpiredAt reports whether the code's window has closed at the given instant.
func (o *OTPCode) IsExpiredAt(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// IsValidAt reports whether the code can still authorize an action at the
// given instant: unused and inside its expiry window.
func (o *OTPCode) IsValidAt(now time.Time) bool {
	return !o.IsUsed && !o.IsExpiredAt(now)
}

// IsValid checks validity against the wall clock.
func (o *OTPCode) IsValid() bool {
	return o.IsValidAt(time.Now())
}
