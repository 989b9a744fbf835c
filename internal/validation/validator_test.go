package validation

import (
	"testing"

	domainerrors "github.com/tripatlas/tripatlas-server/internal/errors"
)

type testInput struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Code      string `json:"code" validate:"omitempty,len=3,alpha"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	in := testInput{
		Username:  "alice",
		Email:     "a@x.com",
		Code:      "FRA",
		StartDate: "2024-07-01",
	}
	if err := v.Validate(in); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	v := New()
	in := testInput{
		Username:  "al",
		Email:     "not-an-email",
		Code:      "FRAN",
		StartDate: "01.07.2024",
	}

	err := v.Validate(in)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var domainErr *domainerrors.Error
	if !domainerrors.As(err, &domainErr) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if domainErr.Code != domainerrors.CodeValidation {
		t.Errorf("code: got %s, want %s", domainErr.Code, domainerrors.CodeValidation)
	}

	fields, ok := domainErr.Details.(map[string]string)
	if !ok {
		t.Fatalf("expected map details, got %T", domainErr.Details)
	}

	// Field names come from json tags, not Go field names.
	for _, field := range []string{"username", "email", "code", "start_date"} {
		if _, present := fields[field]; !present {
			t.Errorf("expected a message for field %q, got %v", field, fields)
		}
	}
}

func TestValidateMissingRequired(t *testing.T) {
	v := New()

	err := v.Validate(testInput{})
	if err == nil {
		t.Fatal("expected validation error for empty input")
	}
	if !domainerrors.Is(err, domainerrors.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
