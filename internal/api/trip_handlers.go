package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	"github.com/tripatlas/tripatlas-server/internal/service"
	"github.com/tripatlas/tripatlas-server/internal/store"
)

func (s *Server) registerTripRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTrips",
		Method:      http.MethodGet,
		Path:        "/trips",
		Summary:     "List trips",
		Description: "Returns trips ordered by start date, optionally filtered by user",
		Tags:        []string{"Trips"},
	}, s.handleListTrips)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createTrip",
		Method:        http.MethodPost,
		Path:          "/trips",
		Summary:       "Create trip",
		Description:   "Adds a trip for a user",
		Tags:          []string{"Trips"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateTrip)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTrip",
		Method:      http.MethodGet,
		Path:        "/trips/{id}",
		Summary:     "Get trip",
		Description: "Returns a trip by ID",
		Tags:        []string{"Trips"},
	}, s.handleGetTrip)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTrip",
		Method:      http.MethodPut,
		Path:        "/trips/{id}",
		Summary:     "Update trip",
		Description: "Replaces the mutable fields of a trip",
		Tags:        []string{"Trips"},
	}, s.handleUpdateTrip)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteTrip",
		Method:        http.MethodDelete,
		Path:          "/trips/{id}",
		Summary:       "Delete trip",
		Description:   "Deletes a trip",
		Tags:          []string{"Trips"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteTrip)

	huma.Register(s.api, huma.Operation{
		OperationID: "listUserTrips",
		Method:      http.MethodGet,
		Path:        "/trips/user/{user_id}",
		Summary:     "List a user's trips",
		Description: "Returns all trips owned by a user; the user must exist",
		Tags:        []string{"Trips"},
	}, s.handleListUserTrips)
}

// === DTOs ===

type TripPayload struct {
	Name       string `json:"name" validate:"required" doc:"Trip name, unique per user"`
	UserID     int64  `json:"user_id" validate:"required" doc:"Owning user ID"`
	CountryID  int64  `json:"country_id" validate:"required" doc:"Country ID"`
	LocationID *int64 `json:"location_id,omitempty" doc:"Optional location ID"`
	StartDate  string `json:"start_date,omitempty" doc:"Start date (yyyy-mm-dd)"`
	EndDate    string `json:"end_date,omitempty" doc:"End date (yyyy-mm-dd), not before start date"`
	Notes      string `json:"notes,omitempty" doc:"Free-form notes"`
}

type TripResponse struct {
	ID         int64  `json:"trip_id" doc:"Trip ID"`
	Name       string `json:"name" doc:"Trip name"`
	UserID     int64  `json:"user_id" doc:"Owning user ID"`
	CountryID  int64  `json:"country_id" doc:"Country ID"`
	LocationID *int64 `json:"location_id,omitempty" doc:"Optional location ID"`
	StartDate  string `json:"start_date,omitempty" doc:"Start date (yyyy-mm-dd)"`
	EndDate    string `json:"end_date,omitempty" doc:"End date (yyyy-mm-dd)"`
	Notes      string `json:"notes,omitempty" doc:"Free-form notes"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips" doc:"List of trips"`
}

type ListTripsInput struct {
	UserID int64 `query:"user_id" doc:"Filter by owning user ID"`
}

type ListTripsOutput struct {
	Body ListTripsResponse
}

type CreateTripInput struct {
	Body TripPayload
}

type GetTripInput struct {
	ID int64 `path:"id" doc:"Trip ID"`
}

type UpdateTripInput struct {
	ID   int64 `path:"id" doc:"Trip ID"`
	Body TripPayload
}

type DeleteTripInput struct {
	ID int64 `path:"id" doc:"Trip ID"`
}

type ListUserTripsInput struct {
	UserID int64 `path:"user_id" doc:"Owning user ID"`
}

type TripOutput struct {
	Body TripResponse
}

func mapTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:         t.ID,
		Name:       t.Name,
		UserID:     t.UserID,
		CountryID:  t.CountryID,
		LocationID: t.LocationID,
		StartDate:  t.StartDate,
		EndDate:    t.EndDate,
		Notes:      t.Notes,
	}
}

func mapTripList(trips []*domain.Trip) ListTripsResponse {
	resp := make([]TripResponse, len(trips))
	for i, t := range trips {
		resp[i] = mapTripResponse(t)
	}
	return ListTripsResponse{Trips: resp}
}

func (p TripPayload) toRequest() service.TripRequest {
	return service.TripRequest{
		Name:       p.Name,
		UserID:     p.UserID,
		CountryID:  p.CountryID,
		LocationID: p.LocationID,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Notes:      p.Notes,
	}
}

// === Handlers ===

func (s *Server) handleListTrips(ctx context.Context, input *ListTripsInput) (*ListTripsOutput, error) {
	var filter store.TripFilter
	if input.UserID != 0 {
		filter.UserID = &input.UserID
	}

	trips, err := s.services.Trip.ListTrips(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListTripsOutput{Body: mapTripList(trips)}, nil
}

func (s *Server) handleCreateTrip(ctx context.Context, input *CreateTripInput) (*TripOutput, error) {
	trip, err := s.services.Trip.CreateTrip(ctx, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: mapTripResponse(trip)}, nil
}

func (s *Server) handleGetTrip(ctx context.Context, input *GetTripInput) (*TripOutput, error) {
	trip, err := s.services.Trip.GetTrip(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: mapTripResponse(trip)}, nil
}

func (s *Server) handleUpdateTrip(ctx context.Context, input *UpdateTripInput) (*TripOutput, error) {
	trip, err := s.services.Trip.UpdateTrip(ctx, input.ID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: mapTripResponse(trip)}, nil
}

func (s *Server) handleDeleteTrip(ctx context.Context, input *DeleteTripInput) (*struct{}, error) {
	if err := s.services.Trip.DeleteTrip(ctx, input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleListUserTrips(ctx context.Context, input *ListUserTripsInput) (*ListTripsOutput, error) {
	trips, err := s.services.Trip.ListTripsForUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListTripsOutput{Body: mapTripList(trips)}, nil
}
