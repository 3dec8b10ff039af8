package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenCodec issues and verifies HS256-signed bearer tokens carrying the
// subject's user id. Tokens are stateless; expiry is the only lifetime bound.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for subjectID with the configured TTL.
func (c *TokenCodec) Issue(subjectID int64) (string, error) {
	return c.IssueWithTTL(subjectID, c.ttl)
}

// IssueWithTTL returns a signed token for subjectID with an explicit TTL.
func (c *TokenCodec) IssueWithTTL(subjectID int64, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(subjectID, 10),
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature, algorithm and expiry, and extracts the subject id.
// An expired token fails with domain.ErrTokenExpired; every other defect
// (bad signature, wrong algorithm, malformed payload, missing subject) fails
// with domain.ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (int64, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return 0, domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, domain.ErrInvalidToken
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	return id, nil
}
