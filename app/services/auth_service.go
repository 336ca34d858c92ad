package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/repositories"
	"github.com/terry1921/stickerstore/config"
	"github.com/terry1921/stickerstore/pkg/auth"
	"github.com/terry1921/stickerstore/pkg/logger"
	"github.com/terry1921/stickerstore/pkg/mail"
)

// Identity is a verified external identity (e.g. a Google account).
type Identity struct {
	Subject       string
	Name          string
	Email         string
	EmailVerified bool
}

// IdentityVerifier validates a federated sign-in credential and returns
// the identity it asserts.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}

// Mailer sends a single message. Satisfied by a closure over pkg/mail so
// tests can capture outgoing mail.
type Mailer func(to, subject, body string) error

// AuthService owns account registration and session establishment.
type AuthService struct {
	users    repositories.UserRepository
	google   IdentityVerifier
	sendMail Mailer
}

// NewAuthService wires the service. google may be nil; federated sign-in
// is then rejected.
func NewAuthService(users repositories.UserRepository, google IdentityVerifier) *AuthService {
	return &AuthService{
		users:  users,
		google: google,
		sendMail: func(to, subject, body string) error {
			return mail.To(to).Subject(subject).Body(body).Send()
		},
	}
}

// SetMailer replaces the outgoing mail hook. Intended for tests.
func (s *AuthService) SetMailer(m Mailer) { s.sendMail = m }

// SignUp registers a new account and sends the verification mail. The
// new account starts unverified with the default role.
func (s *AuthService) SignUp(ctx context.Context, in models.RegisterInput) (models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("services: hash password: %w", err)
	}

	u := models.User{
		UID:      newUID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	if err := s.sendVerification(u); err != nil {
		// The account exists; the user can ask for a resend.
		logger.WithCtx(ctx).Warn("verification mail failed", "uid", u.UID, "error", err)
	}

	logger.WithCtx(ctx).Info("account created", "uid", u.UID)
	return u, nil
}

// SignInEmail authenticates with email and password. A valid credential
// pair on an unverified account does NOT open a session: the attempt is
// rejected with ErrUnverifiedEmail so the client can offer a resend.
func (s *AuthService) SignInEmail(ctx context.Context, in models.LoginInput) (string, models.User, error) {
	u, err := s.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, err
	}
	if !auth.CheckPassword(u.Password, in.Password) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if !u.EmailVerified {
		return "", models.User{}, ErrUnverifiedEmail
	}

	token, err := auth.GenerateToken(u.UID, u.Name, u.Role, u.EmailVerified)
	if err != nil {
		return "", models.User{}, fmt.Errorf("services: issue token: %w", err)
	}
	return token, u, nil
}

// SignInGoogle authenticates with a federated credential. The user
// record is created on first sign-in and never rewritten after that, so
// a manually promoted role survives later sign-ins.
func (s *AuthService) SignInGoogle(ctx context.Context, credential string) (string, models.User, error) {
	if s.google == nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	id, err := s.google.Verify(ctx, credential)
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	u := models.User{
		UID:           id.Subject,
		Name:          id.Name,
		Email:         id.Email,
		Role:          models.RoleUser,
		EmailVerified: id.EmailVerified,
	}
	if err := s.users.EnsureUser(ctx, &u); err != nil {
		return "", models.User{}, err
	}
	stored, err := s.users.FindByUID(ctx, u.UID)
	if err != nil {
		return "", models.User{}, err
	}
	if !stored.EmailVerified {
		return "", models.User{}, ErrUnverifiedEmail
	}

	token, err := auth.GenerateToken(stored.UID, stored.Name, stored.Role, stored.EmailVerified)
	if err != nil {
		return "", models.User{}, fmt.Errorf("services: issue token: %w", err)
	}
	return token, stored, nil
}

// ResendVerification sends a fresh verification mail for the signed-in
// account. Without a principal there is nothing to resend.
func (s *AuthService) ResendVerification(ctx context.Context, principal *auth.Claims) error {
	if principal == nil {
		return ErrNoSession
	}
	u, err := s.users.FindByUID(ctx, principal.UID)
	if err != nil {
		return err
	}
	return s.sendVerification(u)
}

// VerifyEmail consumes a verification token and marks the account.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	uid, err := auth.ValidateVerificationToken(token)
	if err != nil {
		return ErrInvalidCredentials
	}
	return s.users.MarkEmailVerified(ctx, uid)
}

// Profile returns the stored record for the signed-in user.
func (s *AuthService) Profile(ctx context.Context, principal *auth.Claims) (models.User, error) {
	if principal == nil {
		return models.User{}, ErrNoSession
	}
	return s.users.FindByUID(ctx, principal.UID)
}

func (s *AuthService) sendVerification(u models.User) error {
	token, err := auth.GenerateVerificationToken(u.UID)
	if err != nil {
		return fmt.Errorf("services: verification token: %w", err)
	}
	link := fmt.Sprintf("%s/verification?token=%s", config.AppURL(), token)
	body := fmt.Sprintf(
		"<p>Hola %s,</p><p>Confirma tu correo para activar tu cuenta:</p><p><a href=%q>Verificar correo</a></p>",
		u.Name, link,
	)
	return s.sendMail(u.Email, "Confirma tu correo", body)
}

func newUID() string {
	b := make([]byte, 14)
	rand.Read(b)
	return hex.EncodeToString(b)
}
