package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes the kinds of tokens stored server-side.
type TokenType string

const (
	TokenTypeRefresh TokenType = "refresh"
)

// Token is a server-side record of an issued refresh token. Only the hash
// of the token is persisted, never the token itself.
type Token struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenType TokenType `bson:"token_type" json:"token_type"`
	TokenHash string    `bson:"token_hash" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	Revoke    bool      `bson:"revoke" json:"revoke"`
}

// Claims are the parsed contents of an access or refresh token.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
