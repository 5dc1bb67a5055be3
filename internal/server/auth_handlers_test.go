package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"redator/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	s, err := NewServerWithDeps(testConfig(), nil)
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/login", s.Login)

	tests := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "Valid Credentials",
			body:           `{"usuario":"admin","senha":"secret"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:            "Wrong Password",
			body:            `{"usuario":"admin","senha":"wrong"}`,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid credentials",
		},
		{
			name:            "Wrong Username",
			body:            `{"usuario":"root","senha":"secret"}`,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid credentials",
		},
		{
			name:            "Empty Body",
			body:            `{}`,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid credentials",
		},
		{
			name:            "Malformed JSON",
			body:            `{"usuario":`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			if tt.expectedStatus == http.StatusOK {
				token, ok := body["token"].(string)
				require.True(t, ok)

				// The issued token verifies back to the login username.
				usuario, verifyErr := auth.NewTokenService(testSecret).Verify(token)
				require.NoError(t, verifyErr)
				assert.Equal(t, "admin", usuario)
			} else {
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
		})
	}
}
