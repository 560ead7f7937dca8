// Package share signs simulation parameters into self-contained links so a
// result can be reopened without any server-side storage.
package share

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid share token")

type Claims struct {
	Kind   string             `json:"kind"`
	Params map[string]float64 `json:"params"`
	jwt.RegisteredClaims
}

type Signer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewSigner returns a signer for key. An empty key gets a random one, so
// links stay valid only for the life of the process.
func NewSigner(key []byte, ttl time.Duration) (*Signer, error) {
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate share key: %w", err)
		}
	}
	return &Signer{key: key, ttl: ttl, now: time.Now}, nil
}

func (s *Signer) Sign(kind string, params map[string]float64) (string, error) {
	now := s.now()
	claims := Claims{
		Kind:   kind,
		Params: params,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign share token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token and returns the kind and parameters it carries.
func (s *Signer) Parse(tokenString string) (string, map[string]float64, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Kind == "" {
		return "", nil, ErrInvalidToken
	}
	if claims.Params == nil {
		claims.Params = map[string]float64{}
	}
	return claims.Kind, claims.Params, nil
}
