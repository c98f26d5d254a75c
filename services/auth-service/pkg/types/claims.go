package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims is the payload of an access token.
type AccessTokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RefreshTokenClaims is the payload of a refresh token. GrantID names the
// single-use refresh grant record that authorizes the token; the claim alone
// is never enough to refresh.
type RefreshTokenClaims struct {
	UserID  string `json:"user_id"`
	GrantID string `json:"grant_id"`
	jwt.RegisteredClaims
}

// Tokens is an issued access/refresh token pair.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
