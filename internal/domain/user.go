package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	IsVerified   bool       `db:"is_verified" json:"is_verified"`
	OTPHash      []byte     `db:"otp_hash" json:"-"`
	OTPSalt      []byte     `db:"otp_salt" json:"-"`
	OTPExpiresAt *time.Time `db:"otp_expires_at" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// HasPendingOTP reports whether an issued passcode is still on record.
// Hash, salt and expiry are set and cleared together.
func (u *User) HasPendingOTP() bool {
	return len(u.OTPHash) > 0 && u.OTPExpiresAt != nil
}
