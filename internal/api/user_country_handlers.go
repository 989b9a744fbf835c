package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	"github.com/tripatlas/tripatlas-server/internal/service"
)

func (s *Server) registerUserCountryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listUserCountryLinks",
		Method:      http.MethodGet,
		Path:        "/user-countries",
		Summary:     "List user-country links",
		Description: "Returns every user-country association",
		Tags:        []string{"UserCountries"},
	}, s.handleListUserCountryLinks)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createUserCountryLink",
		Method:        http.MethodPost,
		Path:          "/user-countries",
		Summary:       "Link user to country",
		Description:   "Associates a user with a country; a duplicate pair is a conflict",
		Tags:          []string{"UserCountries"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateUserCountryLink)

	huma.Register(s.api, huma.Operation{
		OperationID: "listUserCountries",
		Method:      http.MethodGet,
		Path:        "/user-countries/{user_id}",
		Summary:     "List a user's countries",
		Description: "Returns the countries linked to a user; the user must exist",
		Tags:        []string{"UserCountries"},
	}, s.handleListUserCountries)

	huma.Register(s.api, huma.Operation{
		OperationID: "getUserCountryLink",
		Method:      http.MethodGet,
		Path:        "/user-countries/{user_id}/{country_id}",
		Summary:     "Get user-country link",
		Description: "Returns a single association by its composite key",
		Tags:        []string{"UserCountries"},
	}, s.handleGetUserCountryLink)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteUserCountryLink",
		Method:        http.MethodDelete,
		Path:          "/user-countries/{user_id}/{country_id}",
		Summary:       "Unlink user from country",
		Description:   "Removes an association by its composite key",
		Tags:          []string{"UserCountries"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteUserCountryLink)
}

// === DTOs ===

type UserCountryPayload struct {
	UserID    int64 `json:"user_id" validate:"required" doc:"User ID"`
	CountryID int64 `json:"country_id" validate:"required" doc:"Country ID"`
}

type UserCountryResponse struct {
	UserID    int64 `json:"user_id" doc:"User ID"`
	CountryID int64 `json:"country_id" doc:"Country ID"`
}

type ListUserCountryLinksResponse struct {
	Links []UserCountryResponse `json:"links" doc:"List of user-country links"`
}

type ListUserCountryLinksOutput struct {
	Body ListUserCountryLinksResponse
}

type CreateUserCountryLinkInput struct {
	Body UserCountryPayload
}

type ListUserCountriesInput struct {
	UserID int64 `path:"user_id" doc:"User ID"`
}

type UserCountryLinkKeyInput struct {
	UserID    int64 `path:"user_id" doc:"User ID"`
	CountryID int64 `path:"country_id" doc:"Country ID"`
}

type UserCountryOutput struct {
	Body UserCountryResponse
}

func mapUserCountryResponse(l *domain.UserCountry) UserCountryResponse {
	return UserCountryResponse{UserID: l.UserID, CountryID: l.CountryID}
}

// === Handlers ===

func (s *Server) handleListUserCountryLinks(ctx context.Context, _ *struct{}) (*ListUserCountryLinksOutput, error) {
	links, err := s.services.UserCountry.ListLinks(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserCountryResponse, len(links))
	for i, l := range links {
		resp[i] = mapUserCountryResponse(l)
	}

	return &ListUserCountryLinksOutput{Body: ListUserCountryLinksResponse{Links: resp}}, nil
}

func (s *Server) handleCreateUserCountryLink(ctx context.Context, input *CreateUserCountryLinkInput) (*UserCountryOutput, error) {
	link, err := s.services.UserCountry.CreateLink(ctx, service.UserCountryRequest{
		UserID:    input.Body.UserID,
		CountryID: input.Body.CountryID,
	})
	if err != nil {
		return nil, err
	}
	return &UserCountryOutput{Body: mapUserCountryResponse(link)}, nil
}

func (s *Server) handleListUserCountries(ctx context.Context, input *ListUserCountriesInput) (*ListCountriesOutput, error) {
	countries, err := s.services.UserCountry.ListCountriesForUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]CountryResponse, len(countries))
	for i, c := range countries {
		resp[i] = mapCountryResponse(c)
	}

	return &ListCountriesOutput{Body: ListCountriesResponse{Countries: resp}}, nil
}

func (s *Server) handleGetUserCountryLink(ctx context.Context, input *UserCountryLinkKeyInput) (*UserCountryOutput, error) {
	link, err := s.services.UserCountry.GetLink(ctx, input.UserID, input.CountryID)
	if err != nil {
		return nil, err
	}
	return &UserCountryOutput{Body: mapUserCountryResponse(link)}, nil
}

func (s *Server) handleDeleteUserCountryLink(ctx context.Context, input *UserCountryLinkKeyInput) (*struct{}, error) {
	if err := s.services.UserCountry.DeleteLink(ctx, input.UserID, input.CountryID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
