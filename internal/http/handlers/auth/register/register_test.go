package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/backoffice/internal/models"
	"github.com/magabrotheeeer/backoffice/internal/storage/repository"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	newUser := &models.User{
		UID:      "9f3c2a44-0b4e-4c43-8f68-0a2d6a2f1e11",
		Username: "user1",
		Email:    "user1@example.com",
		Role:     models.RoleCustomer,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.User
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "valid registration",
			requestBody:    Request{Username: "user1", Email: "user1@example.com", Password: "password123"},
			mockUser:       newUser,
			mockErr:        nil,
			mockCalled:     true,
			wantStatusCode: http.StatusCreated,
			wantStatus:     "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "invalid request body",
		},
		{
			name:           "validation error - bad email",
			requestBody:    Request{Username: "user1", Email: "not-an-email", Password: "password123"},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "field Email must be a valid email",
		},
		{
			name:           "validation error - missing username",
			requestBody:    Request{Email: "user1@example.com", Password: "password123"},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "field Username is a required field",
		},
		{
			name:           "username or email already in use",
			requestBody:    Request{Username: "user1", Email: "user1@example.com", Password: "password123"},
			mockUser:       nil,
			mockErr:        repository.ErrConflict,
			mockCalled:     true,
			wantStatusCode: http.StatusConflict,
			wantStatus:     "Error",
			wantError:      "username or email already in use",
		},
		{
			name:           "storage error",
			requestBody:    Request{Username: "user1", Email: "user1@example.com", Password: "password123"},
			mockUser:       nil,
			mockErr:        errors.New("connection refused"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     "Error",
			wantError:      "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockCalled {
				r := tt.requestBody.(Request)
				authMock.On("Register", mock.Anything, r.Username, r.Email, r.Password).
					Return(tt.mockUser, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			}

			if tt.wantStatusCode == http.StatusCreated {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				user, ok := data["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, newUser.UID, user["uid"])
				assert.Equal(t, newUser.Username, user["username"])
				assert.Equal(t, newUser.Email, user["email"])
				assert.Equal(t, models.RoleCustomer, user["role"])
			}

			if tt.mockCalled {
				authMock.AssertExpectations(t)
			}
		})
	}
}
