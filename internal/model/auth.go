package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims issued for a platform user.
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// LoginResponse is returned after registration or login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
