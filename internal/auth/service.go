package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// AuthService issues and validates HMAC-signed access and refresh
// tokens. The subject is the account uuid.
type AuthService struct {
	hmac       []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{hmac: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Kind string `json:"kind"` // "access" or "refresh"
	jwt.RegisteredClaims
}

func (a *AuthService) IssueAccess(sub uuid.UUID, name, role string) (string, error) {
	return a.issue(sub, name, role, "access", a.accessTTL)
}

func (a *AuthService) IssueRefresh(sub uuid.UUID, name, role string) (string, error) {
	return a.issue(sub, name, role, "refresh", a.refreshTTL)
}

func (a *AuthService) RefreshTTL() time.Duration { return a.refreshTTL }

func (a *AuthService) issue(sub uuid.UUID, name, role, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name: name,
		Role: role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.String(),
			Issuer:    "marugo",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.hmac)
}

func (a *AuthService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	c, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return c, nil
}

// ---- subject in context ----

type ctxKey string

const ctxKeySub ctxKey = "sub"

func WithSubject(ctx context.Context, sub uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

func SubjectFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(ctxKeySub).(uuid.UUID)
	return v, ok
}
