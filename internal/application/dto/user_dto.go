package dto

import "time"

// CreateUserRequest admin creates an account; username and a temporary
// password are generated server-side.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	RoleID   string `json:"roleId" validate:"required,uuid"`
}

// UpdateUserRequest profile update; email and role can change, username cannot.
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	RoleID   string `json:"roleId" validate:"required,uuid"`
}

// UserListRequest paging plus the user-specific filters.
type UserListRequest struct {
	PageRequest
	RoleID   string `query:"roleId"`
	IsActive *bool  `query:"isActive"`
}

// UserResponse outbound user shape (no credential material).
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone"`
	IsActive    bool       `json:"isActive"`
	RoleID      string     `json:"roleId"`
	RoleName    string     `json:"roleName"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

// CreatedUserResponse returned once at creation: includes the temporary
// password, which is never retrievable again.
type CreatedUserResponse struct {
	UserResponse
	TemporaryPassword string `json:"temporaryPassword"`
}

// RoleResponse outbound role shape.
type RoleResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
