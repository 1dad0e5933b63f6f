package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if got := e.ToHTTPError(); got.Code != "INTERNAL_ERROR" || got.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error %+v", got)
	}

	s := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if s.Error() != "INVALID_REQUEST: Invalid request" || s.Unwrap() != nil || s.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected simple error %+v", s)
	}
}
