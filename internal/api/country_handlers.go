package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	"github.com/tripatlas/tripatlas-server/internal/service"
)

func (s *Server) registerCountryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCountries",
		Method:      http.MethodGet,
		Path:        "/countries",
		Summary:     "List countries",
		Description: "Returns all countries ordered by name",
		Tags:        []string{"Countries"},
	}, s.handleListCountries)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createCountry",
		Method:        http.MethodPost,
		Path:          "/countries",
		Summary:       "Create country",
		Description:   "Adds a country to the shared reference list",
		Tags:          []string{"Countries"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateCountry)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCountry",
		Method:      http.MethodGet,
		Path:        "/countries/{id}",
		Summary:     "Get country",
		Description: "Returns a country by ID",
		Tags:        []string{"Countries"},
	}, s.handleGetCountry)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCountry",
		Method:      http.MethodPut,
		Path:        "/countries/{id}",
		Summary:     "Update country",
		Description: "Replaces the mutable fields of a country",
		Tags:        []string{"Countries"},
	}, s.handleUpdateCountry)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteCountry",
		Method:        http.MethodDelete,
		Path:          "/countries/{id}",
		Summary:       "Delete country",
		Description:   "Deletes a country and cascades to locations, trips, and user links referencing it",
		Tags:          []string{"Countries"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteCountry)
}

// === DTOs ===

type CountryPayload struct {
	Code      string `json:"code" validate:"required,len=3,alpha" doc:"Three-letter country code"`
	Name      string `json:"name" validate:"required" doc:"Unique country name (case-insensitive)"`
	FlagURL   string `json:"flag_url,omitempty" doc:"Flag image URL"`
	Currency  string `json:"currency,omitempty" doc:"Currency code or name"`
	Continent string `json:"continent,omitempty" doc:"Continent name"`
	Capital   string `json:"capital,omitempty" doc:"Capital city"`
}

type CountryResponse struct {
	ID        int64  `json:"country_id" doc:"Country ID"`
	Code      string `json:"code" doc:"Three-letter country code"`
	Name      string `json:"name" doc:"Country name"`
	FlagURL   string `json:"flag_url,omitempty" doc:"Flag image URL"`
	Currency  string `json:"currency,omitempty" doc:"Currency code or name"`
	Continent string `json:"continent,omitempty" doc:"Continent name"`
	Capital   string `json:"capital,omitempty" doc:"Capital city"`
}

type ListCountriesResponse struct {
	Countries []CountryResponse `json:"countries" doc:"List of countries"`
}

type ListCountriesOutput struct {
	Body ListCountriesResponse
}

type CreateCountryInput struct {
	Body CountryPayload
}

type GetCountryInput struct {
	ID int64 `path:"id" doc:"Country ID"`
}

type UpdateCountryInput struct {
	ID   int64 `path:"id" doc:"Country ID"`
	Body CountryPayload
}

type DeleteCountryInput struct {
	ID int64 `path:"id" doc:"Country ID"`
}

type CountryOutput struct {
	Body CountryResponse
}

func mapCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		FlagURL:   c.FlagURL,
		Currency:  c.Currency,
		Continent: c.Continent,
		Capital:   c.Capital,
	}
}

func (p CountryPayload) toRequest() service.CountryRequest {
	return service.CountryRequest{
		Code:      p.Code,
		Name:      p.Name,
		FlagURL:   p.FlagURL,
		Currency:  p.Currency,
		Continent: p.Continent,
		Capital:   p.Capital,
	}
}

// === Handlers ===

func (s *Server) handleListCountries(ctx context.Context, _ *struct{}) (*ListCountriesOutput, error) {
	countries, err := s.services.Country.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CountryResponse, len(countries))
	for i, c := range countries {
		resp[i] = mapCountryResponse(c)
	}

	return &ListCountriesOutput{Body: ListCountriesResponse{Countries: resp}}, nil
}

func (s *Server) handleCreateCountry(ctx context.Context, input *CreateCountryInput) (*CountryOutput, error) {
	country, err := s.services.Country.CreateCountry(ctx, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &CountryOutput{Body: mapCountryResponse(country)}, nil
}

func (s *Server) handleGetCountry(ctx context.Context, input *GetCountryInput) (*CountryOutput, error) {
	country, err := s.services.Country.GetCountry(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &CountryOutput{Body: mapCountryResponse(country)}, nil
}

func (s *Server) handleUpdateCountry(ctx context.Context, input *UpdateCountryInput) (*CountryOutput, error) {
	country, err := s.services.Country.UpdateCountry(ctx, input.ID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}
	return &CountryOutput{Body: mapCountryResponse(country)}, nil
}

func (s *Server) handleDeleteCountry(ctx context.Context, input *DeleteCountryInput) (*struct{}, error) {
	if err := s.services.Country.DeleteCountry(ctx, input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
