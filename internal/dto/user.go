package dto

import "time"

// UpdateUserRequest is the JSON body for PATCH /users. All fields optional.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName" binding:"omitempty,max=120"`
	LastName  *string `json:"lastName" binding:"omitempty,max=120"`
}

// UserResponse is the outward shape of an account. No password hash, ever.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
