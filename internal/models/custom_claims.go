package models

import "github.com/golang-jwt/jwt/v5"

const TokenTypeAccess = "access"

// HouseholdClaims are the JWT claims issued to an authenticated household owner
type HouseholdClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
