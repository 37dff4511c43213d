package service

import (
	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"
)

// UserService handles business logic for API users
type UserService struct {
	users repository.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface) *UserService {
	return &UserService{users: users}
}

// UserResponse represents a user without credential material
type UserResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// List retrieves all users. The admin gate lives in the auth middleware.
func (s *UserService) List() ([]UserResponse, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, apperrors.NewStorageError("list users", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		}
	}
	return responses, nil
}
