package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/services"
	"github.com/terry1921/stickerstore/pkg/auth"
)

type fakeVerifier struct {
	identity services.Identity
	err      error
}

func (f *fakeVerifier) Verify(ctx context.Context, credential string) (services.Identity, error) {
	return f.identity, f.err
}

type sentMail struct {
	to, subject, body string
}

func newAuthService(users *fakeUserRepo, google services.IdentityVerifier) (*services.AuthService, *[]sentMail) {
	svc := services.NewAuthService(users, google)
	outbox := &[]sentMail{}
	svc.SetMailer(func(to, subject, body string) error {
		*outbox = append(*outbox, sentMail{to, subject, body})
		return nil
	})
	return svc, outbox
}

func registerInput() models.RegisterInput {
	return models.RegisterInput{
		Name:                 "Jordan",
		Email:                "jordan@example.com",
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
	}
}

func TestSignUpCreatesUnverifiedUserAndSendsMail(t *testing.T) {
	users := newFakeUserRepo()
	svc, outbox := newAuthService(users, nil)

	u, err := svc.SignUp(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, u.Role)
	assert.False(t, u.EmailVerified)
	assert.NotEqual(t, "secret-password", u.Password, "password must be hashed")

	require.Len(t, *outbox, 1)
	assert.Equal(t, "jordan@example.com", (*outbox)[0].to)
	assert.Contains(t, (*outbox)[0].body, "token=")
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users, nil)

	_, err := svc.SignUp(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), registerInput())
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestSignInEmailUnverifiedIsDistinguished(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users, nil)

	_, err := svc.SignUp(context.Background(), registerInput())
	require.NoError(t, err)

	// Correct credentials, unverified account: not a generic failure.
	_, _, err = svc.SignInEmail(context.Background(), models.LoginInput{
		Email:    "jordan@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, services.ErrUnverifiedEmail)
	assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestSignInEmailAfterVerification(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users, nil)

	u, err := svc.SignUp(context.Background(), registerInput())
	require.NoError(t, err)
	require.NoError(t, users.MarkEmailVerified(context.Background(), u.UID))

	token, signedIn, err := svc.SignInEmail(context.Background(), models.LoginInput{
		Email:    "jordan@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, u.UID, signedIn.UID)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.UID, claims.UID)
	assert.True(t, claims.EmailVerified)
}

func TestSignInEmailWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users, nil)

	u, err := svc.SignUp(context.Background(), registerInput())
	require.NoError(t, err)
	require.NoError(t, users.MarkEmailVerified(context.Background(), u.UID))

	_, _, err = svc.SignInEmail(context.Background(), models.LoginInput{
		Email:    "jordan@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestSignInEmailUnknownAccount(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo(), nil)

	_, _, err := svc.SignInEmail(context.Background(), models.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestSignInGoogleCreatesRecordOnce(t *testing.T) {
	users := newFakeUserRepo()
	verifier := &fakeVerifier{identity: services.Identity{
		Subject:       "google-uid-1",
		Name:          "Jordan",
		Email:         "jordan@example.com",
		EmailVerified: true,
	}}
	svc, _ := newAuthService(users, verifier)

	_, u, err := svc.SignInGoogle(context.Background(), "credential")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)

	// Promote out of band, then sign in again: the record survives.
	promoted := users.users["google-uid-1"]
	promoted.Role = models.RoleAdmin
	users.users["google-uid-1"] = promoted

	_, again, err := svc.SignInGoogle(context.Background(), "credential")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, again.Role)
}

func TestSignInGoogleUnverifiedEmailRejected(t *testing.T) {
	verifier := &fakeVerifier{identity: services.Identity{
		Subject:       "google-uid-2",
		Name:          "Sam",
		Email:         "sam@example.com",
		EmailVerified: false,
	}}
	svc, _ := newAuthService(newFakeUserRepo(), verifier)

	token, _, err := svc.SignInGoogle(context.Background(), "credential")
	assert.ErrorIs(t, err, services.ErrUnverifiedEmail)
	assert.Empty(t, token)
}

func TestSignInGoogleRejectedCredential(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo(), &fakeVerifier{err: errors.New("bad token")})

	_, _, err := svc.SignInGoogle(context.Background(), "credential")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestResendVerificationNeedsSession(t *testing.T) {
	svc, outbox := newAuthService(newFakeUserRepo(), nil)

	err := svc.ResendVerification(context.Background(), nil)
	assert.ErrorIs(t, err, services.ErrNoSession)
	assert.Empty(t, *outbox)
}

func TestResendVerificationSendsMail(t *testing.T) {
	users := newFakeUserRepo()
	svc, outbox := newAuthService(users, nil)

	u, err := svc.SignUp(context.Background(), registerInput())
	require.NoError(t, err)
	*outbox = nil

	principal := &auth.Claims{UID: u.UID, Name: u.Name, Role: u.Role}
	require.NoError(t, svc.ResendVerification(context.Background(), principal))
	require.Len(t, *outbox, 1)
	assert.Equal(t, u.Email, (*outbox)[0].to)
}

func TestVerifyEmailRoundTrip(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users, nil)

	u, err := svc.SignUp(context.Background(), registerInput())
	require.NoError(t, err)

	token, err := auth.GenerateVerificationToken(u.UID)
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(context.Background(), token))

	stored, err := users.FindByUID(context.Background(), u.UID)
	require.NoError(t, err)
	assert.True(t, stored.EmailVerified)
}

func TestVerifyEmailRejectsSessionToken(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo(), nil)

	// A session JWT is not a verification token.
	token, err := auth.GenerateToken("uid-1", "Jordan", models.RoleUser, true)
	require.NoError(t, err)

	err = svc.VerifyEmail(context.Background(), token)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
