package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	"github.com/tripatlas/tripatlas-server/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listUsers",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Description: "Returns all users ordered by username",
		Tags:        []string{"Users"},
	}, s.handleListUsers)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createUser",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Create user",
		Description:   "Registers a new user account",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "getUser",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get user",
		Description: "Returns a user by ID",
		Tags:        []string{"Users"},
	}, s.handleGetUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateUser",
		Method:      http.MethodPut,
		Path:        "/users/{id}",
		Summary:     "Update user",
		Description: "Replaces the mutable fields of a user",
		Tags:        []string{"Users"},
	}, s.handleUpdateUser)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteUser",
		Method:        http.MethodDelete,
		Path:          "/users/{id}",
		Summary:       "Delete user",
		Description:   "Deletes a user and cascades to their locations, trips, and country links",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteUser)
}

// === DTOs ===

type UserPayload struct {
	Username   string `json:"username" validate:"required,min=3,max=50" doc:"Unique username (case-insensitive)"`
	Email      string `json:"email" validate:"required,email" doc:"Unique email address"`
	ProfileURL string `json:"profile_url,omitempty" doc:"Profile picture URL"`
}

type UserResponse struct {
	ID         int64     `json:"user_id" doc:"User ID"`
	Username   string    `json:"username" doc:"Username"`
	Email      string    `json:"email" doc:"Email address"`
	ProfileURL string    `json:"profile_url,omitempty" doc:"Profile picture URL"`
	CreatedAt  time.Time `json:"created_at" doc:"Creation time"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users" doc:"List of users"`
}

type ListUsersOutput struct {
	Body ListUsersResponse
}

type CreateUserInput struct {
	Body UserPayload
}

type GetUserInput struct {
	ID int64 `path:"id" doc:"User ID"`
}

type UpdateUserInput struct {
	ID   int64 `path:"id" doc:"User ID"`
	Body UserPayload
}

type DeleteUserInput struct {
	ID int64 `path:"id" doc:"User ID"`
}

type UserOutput struct {
	Body UserResponse
}

func mapUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		ProfileURL: u.ProfileURL,
		CreatedAt:  u.CreatedAt,
	}
}

func (p UserPayload) toRequest() service.UserRequest {
	return service.UserRequest{
		Username:   p.Username,
		Email:      p.Email,
		ProfileURL: p.ProfileURL,
	}
}

// === Handlers ===

func (s *Server) handleListUsers(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	users, err := s.services.User.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapUserResponse(u)
	}

	return &ListUsersOutput{Body: ListUsersResponse{Users: resp}}, nil
}

func (s *Server) handleCreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error) {
	user, err := s.services.User.CreateUser(ctx, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: mapUserResponse(user)}, nil
}

func (s *Server) handleGetUser(ctx context.Context, input *GetUserInput) (*UserOutput, error) {
	user, err := s.services.User.GetUser(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: mapUserResponse(user)}, nil
}

func (s *Server) handleUpdateUser(ctx context.Context, input *UpdateUserInput) (*UserOutput, error) {
	user, err := s.services.User.UpdateUser(ctx, input.ID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: mapUserResponse(user)}, nil
}

func (s *Server) handleDeleteUser(ctx context.Context, input *DeleteUserInput) (*struct{}, error) {
	if err := s.services.User.DeleteUser(ctx, input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
