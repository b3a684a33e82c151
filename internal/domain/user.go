package domain

import "time"

type User struct {
	Email     string    `json:"email" dynamodbav:"email"`
	Name      string    `json:"name" dynamodbav:"name"`
	Phone     string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Address   string    `json:"address,omitempty" dynamodbav:"address,omitempty"`
	Image     string    `json:"image,omitempty" dynamodbav:"image,omitempty"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Image   string `json:"image" validate:"omitempty,uri"`
}

// UpdateUserRequest carries a partial profile update. Nil fields are left
// untouched in the store.
type UpdateUserRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Image   *string `json:"image" validate:"omitempty,uri"`
}

// TokenRequest is the body of POST /jwt.
type TokenRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name"`
	IDToken string `json:"id_token"`
}
