package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"time"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

const maxCodeAttempts = 3

var codeRegex = regexp.MustCompile(`^\d{6}$`)

// Mailer delivers verification codes. The service never talks to a mail
// transport directly.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) SendVerificationCode(_ context.Context, email, code string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] verification code email=%s code=%s", email, code)
	}
	return nil
}

// RequestCode issues a fresh six-digit code for (email, purpose),
// replacing any earlier one. Repeated requests inside the resend
// cooldown are rejected. For non-register purposes the email must belong
// to an account, but the response never reveals whether it does.
func (s *Service) RequestCode(ctx context.Context, email string, purpose domain.CodePurpose) error {
	email = normalizeEmail(email)

	if purpose != domain.PurposeRegister {
		if _, err := s.users.GetByEmail(ctx, email); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Printf("auth: code requested for unknown email, purpose=%s", purpose)
				return nil
			}
			return err
		}
	}

	now := time.Now().UTC()
	if current, err := s.codes.Get(ctx, email, purpose); err == nil {
		if current.LastSentAt.Add(s.resendCooldown).After(now) {
			return ErrRateLimited
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	vc := &domain.VerificationCode{
		Email:      email,
		Purpose:    purpose,
		CodeHash:   hashCode(code, s.codePepper),
		Attempts:   0,
		LastSentAt: now,
		ExpiresAt:  now.Add(s.codeTTL),
		UsedAt:     nil,
	}
	if err := s.codes.Upsert(ctx, vc); err != nil {
		return err
	}

	return s.mailer.SendVerificationCode(ctx, email, code)
}

// VerifyCode checks a code without consuming it, for the two-step flows
// where the client verifies first and submits the final form after.
func (s *Service) VerifyCode(ctx context.Context, email string, purpose domain.CodePurpose, code string) error {
	_, err := s.checkCode(ctx, normalizeEmail(email), purpose, code)
	return err
}

// consumeCode validates a code and marks it used. A consumed code cannot
// authorize a second operation.
func (s *Service) consumeCode(ctx context.Context, email string, purpose domain.CodePurpose, code string) error {
	vc, err := s.checkCode(ctx, email, purpose, code)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	vc.UsedAt = &now
	return s.codes.Update(ctx, vc)
}

func (s *Service) checkCode(ctx context.Context, email string, purpose domain.CodePurpose, code string) (*domain.VerificationCode, error) {
	if !codeRegex.MatchString(code) {
		return nil, ErrInvalidCodeFormat
	}

	vc, err := s.codes.Get(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	now := time.Now().UTC()
	if vc.UsedAt != nil || !vc.ExpiresAt.After(now) {
		return nil, ErrInvalidCode
	}
	if vc.Attempts >= maxCodeAttempts {
		return nil, ErrTooManyAttempts
	}

	if hashCode(code, s.codePepper) != vc.CodeHash {
		vc.Attempts++
		if err := s.codes.Update(ctx, vc); err != nil {
			return nil, err
		}
		if vc.Attempts >= maxCodeAttempts {
			return nil, ErrTooManyAttempts
		}
		return nil, ErrInvalidCode
	}

	return vc, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashCode(code, pepper string) string {
	sum := sha256.Sum256([]byte(code + pepper))
	return hex.EncodeToString(sum[:])
}
