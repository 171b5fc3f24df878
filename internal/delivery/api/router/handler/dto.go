package handler

import (
	"time"

	"gatehouse/internal/domain/entity"
)

// AccountResponse is the public view of an account. The password hash never leaves the server.
type AccountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	return &AccountResponse{
		ID:        account.ID.String(),
		Username:  account.Username,
		Email:     account.Email,
		Bio:       account.Bio,
		CreatedAt: account.CreatedAt,
	}
}

// MessageResponse acknowledges operations that return nothing else.
type MessageResponse struct {
	Message string `json:"message"`
}
