package model

import "github.com/golang-jwt/jwt"

// UserClaims is the access-token payload. The user id travels in Subject;
// the denormalized profile fields let the frontend render without an extra
// round trip.
type UserClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	jwt.StandardClaims
}

// RefreshClaims carries identity only. The token value itself is persisted on
// the user record so a rotated token can be rejected server-side.
type RefreshClaims struct {
	jwt.StandardClaims
}
