package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Service struct {
	repo   UserRepository
	codes  CodeStore
	sender CodeSender
}

func NewService(repo UserRepository, codes CodeStore, sender CodeSender) *Service {
	return &Service{repo: repo, codes: codes, sender: sender}
}

// REGISTER
// Creates the account shell. The rest of the profile is filled in by the
// onboarding wizard's final patch.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	if username == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	// Dispatch the first verification code. Registration stands even if
	// delivery fails, the client can request a resend.
	if err := s.SendVerification(ctx, user.ID); err != nil {
		return user, nil
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// SEND VERIFICATION CODE
func (s *Service) SendVerification(ctx context.Context, userID string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}

	ok, err := s.codes.Throttle(ctx, userID, resendCooldown)
	if err != nil {
		return err
	}
	if !ok {
		return ErrResendTooSoon
	}

	code, err := GenerateCode()
	if err != nil {
		return err
	}

	if err := s.codes.Put(ctx, userID, code, codeTTL); err != nil {
		return err
	}

	return s.sender.Send(ctx, user.Email, code)
}

// VERIFY CODE
func (s *Service) VerifyCode(ctx context.Context, userID, code string) error {
	stored, err := s.codes.Get(ctx, userID)
	if err != nil {
		return err
	}
	if stored == "" || stored != code {
		return ErrCodeMismatch
	}

	if err := s.repo.MarkEmailVerified(userID); err != nil {
		return err
	}

	return s.codes.Delete(ctx, userID)
}

// SESSION CHECK
// Resolves a bearer token into the current user, used by the wizard's
// initial step resolution.
func (s *Service) VerifySession(token string) (*User, error) {
	userID, _, _, err := ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(userID)
}
