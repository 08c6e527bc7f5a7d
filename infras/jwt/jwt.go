package jwt

import (
	"context"
	"errors"
	"fmt"
	"petstay/config"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	bearerPrefix = "Bearer "
	clockLeeway  = 30 * time.Second
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carries the principal. Email is the identity every policy decision is made on.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

// JWT verifies bearer tokens issued by the identity provider.
type JWT interface {
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
}

type verifier struct {
	secrets map[TokenType][]byte
	parser  *jwt.Parser
}

func New(cfg *config.Config) JWT {
	return &verifier{
		secrets: map[TokenType][]byte{
			AccessToken:  []byte(cfg.JWT.AccessSecret),
			RefreshToken: []byte(cfg.JWT.RefreshSecret),
		},
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
			jwt.WithLeeway(clockLeeway),
			jwt.WithExpirationRequired(),
		),
	}
}

// ValidateToken checks signature, expiry and token type, and normalizes the e-mail claim.
func (v *verifier) ValidateToken(_ context.Context, tokenString string, tokenType TokenType) (*Claims, error) {
	secret, ok := v.secrets[tokenType]
	if !ok {
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}

	claims := &Claims{}

	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	claims.Email = strings.ToLower(strings.TrimSpace(claims.Email))

	return claims, nil
}

// ExtractTokenFromHeader returns the token from an "Authorization: Bearer <token>" value.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header must be 'Bearer <token>'")
	}

	return strings.TrimSpace(token), nil
}
