package domain

import "time"

type CodePurpose string

const (
	PurposeRegister CodePurpose = "register"
	PurposeLogin    CodePurpose = "login"
	PurposeReset    CodePurpose = "reset"
)

// VerificationCode is an explicit keyed, expiring record replacing ambient
// session storage. Only the sha256 hash of the code is kept.
type VerificationCode struct {
	ID         int64       `json:"-" gorm:"primaryKey"`
	Email      string      `json:"email" gorm:"size:100;not null;uniqueIndex:idx_email_purpose"`
	Purpose    CodePurpose `json:"purpose" gorm:"size:20;not null;uniqueIndex:idx_email_purpose"`
	CodeHash   string      `json:"-" gorm:"size:64;not null"`
	Attempts   int         `json:"-"`
	LastSentAt time.Time   `json:"-"`
	ExpiresAt  time.Time   `json:"-"`
	UsedAt     *time.Time  `json:"-"`
	CreatedAt  time.Time   `json:"-"`
}

func (VerificationCode) TableName() string { return "verification_codes" }
