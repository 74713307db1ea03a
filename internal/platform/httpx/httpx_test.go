package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/platform/apperr"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("bad"), http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("unauthorized"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden(), http.StatusForbidden},
		{"not found", apperr.NotFound("pet"), http.StatusNotFound},
		{"conflict", apperr.Conflict("duplicate value", nil), http.StatusConflict},
		{"internal", apperr.Internal(errors.New("db down")), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}

func TestWriteError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperr.Internal(errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}
	cases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"ok", `{"name":"Milo"}`, ""},
		{"empty body", ``, "request body is required"},
		{"unknown field", `{"name":"Milo","owner":"x"}`, "invalid json"},
		{"malformed", `{"name":`, "invalid json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.payload))
			var got body
			err := DecodeJSON(req, &got)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Milo", got.Name)
				return
			}
			require.ErrorIs(t, err, apperr.ErrValidation)
			assert.Equal(t, tc.wantErr, apperr.PublicMessage(err))
		})
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{in: " 2024-03-05 ", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{in: "2024-03-05T10:30:00-03:00", want: time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC)},
		{in: "05/03/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate("date", tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, apperr.ErrValidation)
				assert.Contains(t, err.Error(), "date must be RFC3339 or YYYY-MM-DD")
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("next_due_date", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	blank := "  "
	got, err = ParseOptionalDate("next_due_date", &blank)
	require.NoError(t, err)
	assert.Nil(t, got)

	raw := "2025-01-10"
	got, err = ParseOptionalDate("next_due_date", &raw)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year())

	bad := "tomorrow"
	_, err = ParseOptionalDate("next_due_date", &bad)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
