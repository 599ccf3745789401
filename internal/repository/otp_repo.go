package repository

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/armelhouessou/gotask/internal/model"
)

// OTPRepository is the ledger of one-time codes. Issuance, lookup and
// consumption all go through here.
type OTPRepository struct {
	db *gorm.DB

	// injectable for tests
	now    func() time.Time
	random io.Reader
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{
		db:     db,
		now:    time.Now,
		random: rand.Reader,
	}
}

// Issue invalidates every unused code for (user, purpose) and creates one
// fresh code in a single transaction, so at most one code per purpose is ever
// valid, even under concurrent issuance.
func (r *OTPRepository) Issue(userID uuid.UUID, purpose model.OTPPurpose, channel model.OTPChannel) (*model.OTPCode, error) {
	code, err := generateCode(r.random, model.OTPCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	now := r.now()
	otp := &model.OTPCode{
		UserID:    userID,
		Code:      code,
		Channel:   channel,
		Purpose:   purpose,
		ExpiresAt: now.Add(model.OTPTTL),
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		// Lock the owner row first. At read-committed isolation two
		// concurrent transactions would otherwise each invalidate only the
		// already-committed codes and both insert a valid one.
		var owner model.User
		if err := tx.Select("id").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&owner, "id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.OTPCode{}).
			Where("user_id = ? AND purpose = ? AND is_used = ?", userID, purpose, false).
			Update("is_used", true).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
	if err != nil {
		return nil, err
	}
	return otp, nil
}

// FindLatestValid returns the most recently created unused code matching
// (user, code, purpose) that has not expired. Absent and expired codes are
// the same from the caller's point of view.
func (r *OTPRepository) FindLatestValid(userID uuid.UUID, code string, purpose model.OTPPurpose) (*model.OTPCode, error) {
	var otp model.OTPCode
	err := r.db.
		Where("user_id = ? AND code = ? AND purpose = ? AND is_used = ?", userID, code, purpose, false).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return nil, err
	}
	if otp.IsExpiredAt(r.now()) {
		return nil, gorm.ErrRecordNotFound
	}
	return &otp, nil
}

// MarkAsUsed consumes a code. Calling it on an already-consumed code is a no-op.
func (r *OTPRepository) MarkAsUsed(otpID uuid.UUID) error {
	return r.db.Model(&model.OTPCode{}).
		Where("id = ?", otpID).
		Update("is_used", true).Error
}

// generateCode draws a uniform random digit string of the given length from
// the supplied source.
func generateCode(random io.Reader, length int) (string, error) {
	code := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(random, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += fmt.Sprintf("%d", n.Int64())
	}
	return code, nil
}
