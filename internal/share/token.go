package share

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"example.com/diet-planner/backend/internal/planner"
)

const tokenType = "plan_share"

var ErrInvalidToken = errors.New("invalid share token")

type Claims struct {
	TokenType string          `json:"typ"`
	Profile   planner.Profile `json:"profile"`
	jwt.RegisteredClaims
}

// TokenManager signs profiles into share links so plans can be rebuilt without storage.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager инициализирует менеджер токенов для ссылок на план.
func NewTokenManager(secret string, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue подписывает профиль и возвращает токен и время его истечения.
func (m *TokenManager) Issue(profile planner.Profile) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		TokenType: tokenType,
		Profile:   profile,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Parse валидирует токен и возвращает сохраненный в нем профиль.
func (m *TokenManager) Parse(tokenString string) (planner.Profile, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuer(m.issuer))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return planner.Profile{}, errors.Join(ErrInvalidToken, err)
	}

	if !token.Valid {
		return planner.Profile{}, ErrInvalidToken
	}

	if claims.TokenType != tokenType {
		return planner.Profile{}, errors.Join(ErrInvalidToken, errors.New("token type mismatch"))
	}

	return claims.Profile, nil
}
