package models

import "github.com/golang-jwt/jwt/v5"

// UserRole represents the portal roles encoded in access tokens.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleGuardian UserRole = "GUARDIAN"
	RoleTutor    UserRole = "TUTOR"
)

// JWTClaims represents the access-token payload issued by the external
// auth service. This API only validates tokens, it never issues them.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
