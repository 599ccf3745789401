package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/armelhouessou/gotask/internal/model"
	"github.com/armelhouessou/gotask/pkg/password"
)

// otpExpiryMinutes mirrors model.OTPTTL for messages and emails.
const otpExpiryMinutes = 10

// AuthService orchestrates registration, login and the credential-recovery
// flow over the user store, the OTP ledger and the token issuer.
type AuthService struct {
	users  UserStore
	otps   OTPStore
	tokens TokenIssuer
	mailer Mailer
}

func NewAuthService(users UserStore, otps OTPStore, tokens TokenIssuer, mailer Mailer) *AuthService {
	return &AuthService{
		users:  users,
		otps:   otps,
		tokens: tokens,
		mailer: mailer,
	}
}

// Register creates a new account. Tokens are not issued here; login is a
// separate explicit step.
func (s *AuthService) Register(req model.RegisterRequest) (*model.UserResponse, error) {
	if req.Password != req.Password2 {
		return nil, newValidationError("password", "passwords do not match")
	}
	if err := password.Validate(req.Password); err != nil {
		return nil, newValidationError("password", err.Error())
	}

	email := normalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, newValidationError("email", "this email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("failed to check email availability")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Email:       email,
		Password:    hashed,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.users.Create(user); err != nil {
		// The pre-check above can lose a race; the unique index is the
		// real guard and its violation is still a duplicate email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newValidationError("email", "this email is already registered")
		}
		return nil, errors.New("failed to create user")
	}

	resp := user.ToResponse()
	return &resp, nil
}

// Login authenticates a user and returns a token pair. Unknown email and
// wrong password are indistinguishable to the caller. Email-verification
// status is deliberately not a login gate.
func (s *AuthService) Login(req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.New("failed to find user")
	}

	if !password.Verify(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Email)
	if err != nil {
		return nil, errors.New("failed to generate tokens")
	}

	return &model.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// ChangePassword replaces the password of an authenticated user after
// verifying the current one. No OTP involved.
func (s *AuthService) ChangePassword(userID uuid.UUID, req model.ChangePasswordRequest) error {
	if req.NewPassword != req.NewPassword2 {
		return newValidationError("new_password", "passwords do not match")
	}
	if err := password.Validate(req.NewPassword); err != nil {
		return newValidationError("new_password", err.Error())
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return ErrNotFound
	}
	if !password.Verify(user.Password, req.OldPassword) {
		return ErrInvalidCredentials
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return errors.New("failed to hash password")
	}
	return s.users.UpdatePassword(user.ID, hashed)
}

// RequestPasswordReset issues a reset code and emails it. The code persists
// even when delivery fails; the caller just learns the send did not go out.
func (s *AuthService) RequestPasswordReset(req model.PasswordResetRequest) (*model.OTPSentResponse, error) {
	user, err := s.users.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.New("failed to find user")
	}

	otp, err := s.otps.Issue(user.ID, model.OTPPurposePasswordReset, model.OTPChannelEmail)
	if err != nil {
		return nil, errors.New("failed to issue reset code")
	}

	if err := s.mailer.SendPasswordReset(user.Email, user.FullName(), otp.Code, otpExpiryMinutes); err != nil {
		return nil, ErrDeliveryFailed
	}

	return &model.OTPSentResponse{
		Message:   "A verification code has been sent to your email",
		Email:     user.Email,
		ExpiresIn: otpExpiryMinutes * 60,
	}, nil
}

// VerifyResetAndSetPassword checks the reset code and, in one transaction,
// sets the new password and consumes the code. A second call with the same
// code fails as invalid.
func (s *AuthService) VerifyResetAndSetPassword(req model.VerifyResetRequest) error {
	if req.NewPassword != req.NewPassword2 {
		return newValidationError("new_password", "passwords do not match")
	}
	if err := password.Validate(req.NewPassword); err != nil {
		return newValidationError("new_password", err.Error())
	}

	user, err := s.users.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.New("failed to find user")
	}

	otp, err := s.otps.FindLatestValid(user.ID, req.OTPCode, model.OTPPurposePasswordReset)
	if err != nil {
		return ErrInvalidOTP
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return errors.New("failed to hash password")
	}
	if err := s.users.ResetPassword(user.ID, otp.ID, hashed); err != nil {
		return errors.New("failed to reset password")
	}
	return nil
}

// RequestEmailVerification issues a verification code for the authenticated
// user's address and emails it. Requesting again is harmless; the newest code
// supersedes older ones.
func (s *AuthService) RequestEmailVerification(userID uuid.UUID) (*model.OTPSentResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if user.IsEmailVerified {
		return nil, newValidationError("email", "email is already verified")
	}

	otp, err := s.otps.Issue(user.ID, model.OTPPurposeEmailVerification, model.OTPChannelEmail)
	if err != nil {
		return nil, errors.New("failed to issue verification code")
	}

	if err := s.mailer.SendVerificationCode(user.Email, user.FullName(), otp.Code, otpExpiryMinutes); err != nil {
		return nil, ErrDeliveryFailed
	}

	return &model.OTPSentResponse{
		Message:   "A verification code has been sent to your email",
		Email:     user.Email,
		ExpiresIn: otpExpiryMinutes * 60,
	}, nil
}

// ConfirmEmail consumes a verification code and marks the address verified.
func (s *AuthService) ConfirmEmail(userID uuid.UUID, req model.VerifyEmailRequest) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return ErrNotFound
	}

	otp, err := s.otps.FindLatestValid(user.ID, req.OTPCode, model.OTPPurposeEmailVerification)
	if err != nil {
		return ErrInvalidOTP
	}

	if err := s.otps.MarkAsUsed(otp.ID); err != nil {
		return errors.New("failed to consume verification code")
	}
	return s.users.VerifyEmail(user.ID)
}

// DeleteAccount removes the user after re-checking the password. Tasks and
// OTP codes go with the account via the cascade constraints.
func (s *AuthService) DeleteAccount(userID uuid.UUID, req model.DeleteAccountRequest) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return ErrNotFound
	}
	if !password.Verify(user.Password, req.Password) {
		return ErrInvalidCredentials
	}
	return s.users.Delete(user.ID)
}

// GetProfile returns the current user's profile
func (s *AuthService) GetProfile(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

// UpdateProfile applies a partial profile update. Email and verification
// flags are not client-writable.
func (s *AuthService) UpdateProfile(userID uuid.UUID, req model.UpdateProfileRequest) (*model.UserResponse, error) {
	if err := s.users.UpdateProfile(userID, req.FirstName, req.LastName, req.PhoneNumber); err != nil {
		return nil, errors.New("failed to update profile")
	}
	return s.GetProfile(userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
