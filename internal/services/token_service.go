package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken is returned when a token fails structural, signature
// or expiry validation.
var ErrInvalidToken = errors.New("invalid token")

// TokenConfig holds the signing material for issued tokens.
type TokenConfig struct {
	Secret string
	TTL    time.Duration // zero means the 24h default
}

// Claims is the identity embedded in an issued token.
type Claims struct {
	ID    uint
	Email string
}

// TokenService issues and verifies signed, time-bound authentication tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a new TokenService from explicit configuration.
func NewTokenService(cfg TokenConfig) *TokenService {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
	}
}

// Issue produces a signed HS256 token carrying the user's id and email.
func (s *TokenService) Issue(id uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    id,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token string, returning its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Numeric JSON claims decode as float64.
	id, idOK := mapClaims["id"].(float64)
	email, emailOK := mapClaims["email"].(string)
	if !idOK || !emailOK {
		return nil, ErrInvalidToken
	}

	return &Claims{ID: uint(id), Email: email}, nil
}
