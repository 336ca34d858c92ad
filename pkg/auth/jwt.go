package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/terry1921/stickerstore/config"
)

// Claims holds the typed JWT payload for a signed-in user.
type Claims struct {
	UID           string `json:"uid"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// verifyClaims is the payload of a purpose-scoped email verification token.
type verifyClaims struct {
	UID     string `json:"uid"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

const verifyPurpose = "email-verification"

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed session JWT for the given user.
func GenerateToken(uid, name, role string, emailVerified bool) (string, error) {
	claims := Claims{
		UID:           uid,
		Name:          name,
		Role:          role,
		EmailVerified: emailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a session JWT string.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// GenerateVerificationToken mints the token embedded in verification
// email links. Valid for 48 hours.
func GenerateVerificationToken(uid string) (string, error) {
	claims := verifyClaims{
		UID:     uid,
		Purpose: verifyPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(48 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateVerificationToken checks a verification token and returns the
// user ID it was minted for.
func ValidateVerificationToken(t string) (string, error) {
	token, err := jwt.ParseWithClaims(t, &verifyClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*verifyClaims)
	if !ok || !token.Valid || claims.Purpose != verifyPurpose {
		return "", fmt.Errorf("auth: not a verification token")
	}

	return claims.UID, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
