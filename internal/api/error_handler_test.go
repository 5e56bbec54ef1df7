package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown location", domain.ErrLocationUnknown, http.StatusNotFound},
		{"address not found", fmt.Errorf("geocode %q: %w", "x", domain.ErrAddressNotFound), http.StatusNotFound},
		{"provider unreachable", fmt.Errorf("maps: %w", domain.ErrProviderUnavailable), http.StatusServiceUnavailable},
		{"no route", domain.ErrNoRoute, http.StatusServiceUnavailable},
		{"malformed response", domain.ErrMalformedResponse, http.StatusServiceUnavailable},
		{"zero baseline", domain.ErrZeroBaseline, http.StatusServiceUnavailable},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := invokeErrorHandler(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg == "" {
				t.Fatalf("expected error message in envelope")
			}
		})
	}
}

func TestErrorHandler_ProviderFailureMessage(t *testing.T) {
	_, msg := invokeErrorHandler(t, domain.ErrProviderUnavailable)
	if msg != "could not get traffic data for this route, please try again" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandler_EchoErrorPassesThrough(t *testing.T) {
	code, msg := invokeErrorHandler(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "destination is required"))
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if msg != "destination is required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := invokeErrorHandler(t, errors.New("mongo primary stepped down"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
