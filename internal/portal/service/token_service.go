package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/MannyGDy/Captive-Portal/internal/portal/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
)

type TokenGenerator interface {
	GenerateUserToken(userID, email string) (string, error)
	GenerateAdminToken(adminID, username, role string) (string, error)
	VerifyUserToken(tokenString string) (*UserClaims, error)
	VerifyAdminToken(tokenString string) (*AdminClaims, error)
}

// TokenService mints and verifies HS256 bearer tokens. There is no
// refresh and no revocation list: expiry is the only invalidation path,
// so a token outlives deactivation or deletion of its account.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type AdminClaims struct {
	jwt.RegisteredClaims
	AdminID  string `json:"adminId"`
	Username string `json:"adminUsername"`
	Role     string `json:"role"`
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (ts *TokenService) GenerateUserToken(userID, email string) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

func (ts *TokenService) GenerateAdminToken(adminID, username, role string) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		AdminID:  adminID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// VerifyUserToken parses and validates a guest token, distinguishing an
// expired token from a malformed or badly signed one.
func (ts *TokenService) VerifyUserToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
	if err := ts.verify(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Email == "" {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

// VerifyAdminToken parses and validates a staff token. A guest token is
// rejected here even when its signature is valid: it carries no admin
// identity.
func (ts *TokenService) VerifyAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := ts.verify(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.AdminID == "" {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

func (ts *TokenService) verify(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return autherror.ErrTokenExpired
		}
		return autherror.ErrTokenInvalid
	}
	if !token.Valid {
		return autherror.ErrTokenInvalid
	}

	return nil
}
