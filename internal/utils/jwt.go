package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT together with its expiry. The
// token carries the user id (sub), username and role claims, which is
// everything the authorization rules need to rebuild the caller's
// identity without a database lookup.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims are the values extracted from a verified access token.
type Claims struct {
	UserID   uint64
	Username string
	Role     string
}

// ErrInvalidToken is returned when a token fails signature or claim
// validation.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a user. It takes
// the signing secret, the user's id, username and role, and a TTL in
// minutes. Standard exp/iat claims are included so the library
// enforces expiry during parsing.
func NewAccessToken(secret string, userID uint64, username, role string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token
// string and returns its claims. Only HMAC-signed tokens are accepted;
// anything else fails with ErrInvalidToken.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	out := Claims{}
	switch v := mc["sub"].(type) {
	case float64:
		out.UserID = uint64(v)
	case string:
		// tokens issued by older services encode sub as a string
		n, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return Claims{}, ErrInvalidToken
		}
		out.UserID = n
	default:
		return Claims{}, ErrInvalidToken
	}
	if s, ok := mc["username"].(string); ok {
		out.Username = s
	}
	role, ok := mc["role"].(string)
	if !ok || role == "" {
		return Claims{}, ErrInvalidToken
	}
	out.Role = role
	return out, nil
}
