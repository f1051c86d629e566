package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

type tokenIssuer interface {
	GenerateToken(email, role string) (string, error)
}

// Service covers registration, login and profile management. Every
// entry point into an account (register, first login factors, password
// reset) passes through the keyed verification codes in verification.go.
type Service struct {
	users          *repository.UserRepository
	codes          *repository.VerificationCodeRepository
	jwt            tokenIssuer
	mailer         Mailer
	codePepper     string
	codeTTL        time.Duration
	resendCooldown time.Duration
}

func NewService(
	users *repository.UserRepository,
	codes *repository.VerificationCodeRepository,
	jwt tokenIssuer,
	mailer Mailer,
	codePepper string,
	codeTTL time.Duration,
	resendCooldown time.Duration,
) *Service {
	return &Service{
		users:          users,
		codes:          codes,
		jwt:            jwt,
		mailer:         mailer,
		codePepper:     codePepper,
		codeTTL:        codeTTL,
		resendCooldown: resendCooldown,
	}
}

// Register creates a tenant or owner account. It consumes a verification
// code previously requested for this email, so an unreachable address
// cannot sign up.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UserPublic, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.consumeCode(ctx, email, domain.PurposeRegister, req.Code); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Birthday:     req.Birthday,
		Role:         domain.UserRole(req.Role),
		Status:       domain.UserActive,
	}
	if user.CanHavePhoto() {
		user.PhotoURL = req.PhotoURL
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return publicUser(user), nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status == domain.UserBlocked {
		return nil, ErrUserBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: publicUser(user), Token: token}, nil
}

// ResetPassword replaces a forgotten password. The caller proves control
// of the mailbox with a reset-purpose verification code.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	email := normalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.consumeCode(ctx, email, domain.PurposeReset, req.Code); err != nil {
		return err
	}

	hash, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

func (s *Service) UpdatePassword(ctx context.Context, email string, req UpdatePasswordRequest) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

func (s *Service) UpdateProfile(ctx context.Context, email string, req UpdateProfileRequest) (*UserPublic, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Birthday != nil {
		user.Birthday = req.Birthday
	}
	if req.PhotoURL != "" && user.CanHavePhoto() {
		user.PhotoURL = req.PhotoURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return publicUser(user), nil
}

func (s *Service) GetProfile(ctx context.Context, email string) (*UserPublic, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return publicUser(user), nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func publicUser(u *domain.User) *UserPublic {
	return &UserPublic{
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		Birthday: u.Birthday,
		PhotoURL: u.PhotoURL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
