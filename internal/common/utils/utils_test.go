package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	now := time.Now()
	token, err := GenerateJWT("me", "vibesnap_admin", "secret", time.Hour, now)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "me", claims.UserID)
	assert.Equal(t, "vibesnap_admin", claims.Username)
}

func TestJWT_Rejects(t *testing.T) {
	now := time.Now()
	valid, err := GenerateJWT("me", "vibesnap_admin", "secret", time.Hour, now)
	require.NoError(t, err)
	expired, err := GenerateJWT("me", "vibesnap_admin", "secret", time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other"},
		{"expired", expired, "secret"},
		{"garbage", "not.a.token", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		Type string `json:"type" validate:"required,oneof=text image audio"`
	}

	assert.NoError(t, ValidateStruct(request{Type: "audio"}))

	err := ValidateStruct(request{Type: "video"})
	require.Error(t, err)
	assert.Equal(t, "Type must be one of: text image audio", err.Error())

	err = ValidateStruct(request{})
	require.Error(t, err)
	assert.Equal(t, "Type is required", err.Error())
}

func TestResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessResponse(rec, map[string]int{"likes": 3}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"likes":3}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ErrorResponse(rec, "Unauthorized", http.StatusUnauthorized)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Unauthorized", body.Error)
}
