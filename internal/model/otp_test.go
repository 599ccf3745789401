package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPCodeValidity(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		otp   OTPCode
		at    time.Time
		valid bool
	}{
		{
			name:  "fresh unused code inside window",
			otp:   OTPCode{IsUsed: false, ExpiresAt: now.Add(OTPTTL)},
			at:    now,
			valid: true,
		},
		{
			name:  "one second before expiry",
			otp:   OTPCode{IsUsed: false, ExpiresAt: now.Add(time.Second)},
			at:    now,
			valid: true,
		},
		{
			name:  "exactly at expiry",
			otp:   OTPCode{IsUsed: false, ExpiresAt: now},
			at:    now,
			valid: false,
		},
		{
			name:  "past expiry",
			otp:   OTPCode{IsUsed: false, ExpiresAt: now.Add(-time.Minute)},
			at:    now,
			valid: false,
		},
		{
			name:  "consumed code inside window",
			otp:   OTPCode{IsUsed: true, ExpiresAt: now.Add(OTPTTL)},
			at:    now,
			valid: false,
		},
		{
			name:  "consumed and expired",
			otp:   OTPCode{IsUsed: true, ExpiresAt: now.Add(-time.Minute)},
			at:    now,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.otp.IsValidAt(tt.at))
		})
	}
}

func TestOTPCodeConsumedNeverRevertsToValid(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	otp := OTPCode{IsUsed: false, ExpiresAt: now.Add(OTPTTL)}

	assert.True(t, otp.IsValidAt(now))

	otp.IsUsed = true
	// No later instant, inside or outside the window, makes it valid again.
	for _, at := range []time.Time{now, now.Add(time.Minute), now.Add(OTPTTL), now.Add(24 * time.Hour)} {
		assert.False(t, otp.IsValidAt(at))
	}
}
