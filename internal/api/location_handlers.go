package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	"github.com/tripatlas/tripatlas-server/internal/service"
	"github.com/tripatlas/tripatlas-server/internal/store"
)

func (s *Server) registerLocationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listLocations",
		Method:      http.MethodGet,
		Path:        "/locations",
		Summary:     "List locations",
		Description: "Returns locations ordered by name, optionally filtered by user and country",
		Tags:        []string{"Locations"},
	}, s.handleListLocations)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createLocation",
		Method:        http.MethodPost,
		Path:          "/locations",
		Summary:       "Create location",
		Description:   "Adds a location for a user",
		Tags:          []string{"Locations"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateLocation)

	huma.Register(s.api, huma.Operation{
		OperationID: "getLocation",
		Method:      http.MethodGet,
		Path:        "/locations/{id}",
		Summary:     "Get location",
		Description: "Returns a location by ID",
		Tags:        []string{"Locations"},
	}, s.handleGetLocation)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateLocation",
		Method:      http.MethodPut,
		Path:        "/locations/{id}",
		Summary:     "Update location",
		Description: "Replaces the mutable fields of a location",
		Tags:        []string{"Locations"},
	}, s.handleUpdateLocation)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteLocation",
		Method:        http.MethodDelete,
		Path:          "/locations/{id}",
		Summary:       "Delete location",
		Description:   "Deletes a location; trips pointing at it keep existing with the reference cleared",
		Tags:          []string{"Locations"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteLocation)

	huma.Register(s.api, huma.Operation{
		OperationID: "listUserLocations",
		Method:      http.MethodGet,
		Path:        "/locations/user/{user_id}",
		Summary:     "List a user's locations",
		Description: "Returns all locations owned by a user; the user must exist",
		Tags:        []string{"Locations"},
	}, s.handleListUserLocations)
}

// === DTOs ===

type LocationPayload struct {
	Name      string `json:"name" validate:"required" doc:"Location name, unique per user"`
	UserID    int64  `json:"user_id" validate:"required" doc:"Owning user ID"`
	CountryID int64  `json:"country_id" validate:"required" doc:"Country ID"`
	ImageURL  string `json:"image_url,omitempty" doc:"Image URL"`
}

type LocationResponse struct {
	ID        int64  `json:"location_id" doc:"Location ID"`
	Name      string `json:"name" doc:"Location name"`
	UserID    int64  `json:"user_id" doc:"Owning user ID"`
	CountryID int64  `json:"country_id" doc:"Country ID"`
	ImageURL  string `json:"image_url,omitempty" doc:"Image URL"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations" doc:"List of locations"`
}

type ListLocationsInput struct {
	UserID    int64 `query:"user_id" doc:"Filter by owning user ID"`
	CountryID int64 `query:"country_id" doc:"Filter by country ID"`
}

type ListLocationsOutput struct {
	Body ListLocationsResponse
}

type CreateLocationInput struct {
	Body LocationPayload
}

type GetLocationInput struct {
	ID int64 `path:"id" doc:"Location ID"`
}

type UpdateLocationInput struct {
	ID   int64 `path:"id" doc:"Location ID"`
	Body LocationPayload
}

type DeleteLocationInput struct {
	ID int64 `path:"id" doc:"Location ID"`
}

type ListUserLocationsInput struct {
	UserID int64 `path:"user_id" doc:"Owning user ID"`
}

type LocationOutput struct {
	Body LocationResponse
}

func mapLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		UserID:    l.UserID,
		CountryID: l.CountryID,
		ImageURL:  l.ImageURL,
	}
}

func mapLocationList(locations []*domain.Location) ListLocationsResponse {
	resp := make([]LocationResponse, len(locations))
	for i, l := range locations {
		resp[i] = mapLocationResponse(l)
	}
	return ListLocationsResponse{Locations: resp}
}

func (p LocationPayload) toRequest() service.LocationRequest {
	return service.LocationRequest{
		Name:      p.Name,
		UserID:    p.UserID,
		CountryID: p.CountryID,
		ImageURL:  p.ImageURL,
	}
}

// === Handlers ===

func (s *Server) handleListLocations(ctx context.Context, input *ListLocationsInput) (*ListLocationsOutput, error) {
	var filter store.LocationFilter
	if input.UserID != 0 {
		filter.UserID = &input.UserID
	}
	if input.CountryID != 0 {
		filter.CountryID = &input.CountryID
	}

	locations, err := s.services.Location.ListLocations(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListLocationsOutput{Body: mapLocationList(locations)}, nil
}

func (s *Server) handleCreateLocation(ctx context.Context, input *CreateLocationInput) (*LocationOutput, error) {
	location, err := s.services.Location.CreateLocation(ctx, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &LocationOutput{Body: mapLocationResponse(location)}, nil
}

func (s *Server) handleGetLocation(ctx context.Context, input *GetLocationInput) (*LocationOutput, error) {
	location, err := s.services.Location.GetLocation(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &LocationOutput{Body: mapLocationResponse(location)}, nil
}

func (s *Server) handleUpdateLocation(ctx context.Context, input *UpdateLocationInput) (*LocationOutput, error) {
	location, err := s.services.Location.UpdateLocation(ctx, input.ID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &LocationOutput{Body: mapLocationResponse(location)}, nil
}

func (s *Server) handleDeleteLocation(ctx context.Context, input *DeleteLocationInput) (*struct{}, error) {
	if err := s.services.Location.DeleteLocation(ctx, input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleListUserLocations(ctx context.Context, input *ListUserLocationsInput) (*ListLocationsOutput, error) {
	locations, err := s.services.Location.ListLocationsForUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListLocationsOutput{Body: mapLocationList(locations)}, nil
}
