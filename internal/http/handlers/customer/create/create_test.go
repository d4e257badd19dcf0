package create

import (
	"bytes"
	"context"
	"encoding/json"
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

type CustomerServiceMock struct {
	mock.Mock
}

func (m *CustomerServiceMock) Create(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	args := m.Called(ctx, customer)
	res, _ := args.Get(0).(*models.Customer)
	return res, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateCustomerHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(CustomerServiceMock)
	logger := newNoopLogger()

	handler := New(logger, serviceMock)

	created := &models.Customer{ID: 1, Name: "Alice", LastName: "Smith", Email: "alice@example.com"}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockResult     *models.Customer
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "valid customer",
			requestBody:    Request{Name: "Alice", LastName: "Smith", Email: "alice@example.com"},
			mockResult:     created,
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
			requestBody:    Request{Name: "Alice", LastName: "Smith", Email: "not-an-email"},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "field Email must be a valid email",
		},
		{
			name:           "validation error - missing last name",
			requestBody:    Request{Name: "Alice", Email: "alice@example.com"},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "field LastName is a required field",
		},
		{
			name:           "duplicate email",
			requestBody:    Request{Name: "Alice", LastName: "Smith", Email: "alice@example.com"},
			mockErr:        repository.ErrConflict,
			mockCalled:     true,
			wantStatusCode: http.StatusConflict,
			wantStatus:     "Error",
			wantError:      "email already in use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock.ExpectedCalls = nil
			serviceMock.Calls = nil

			if tt.mockCalled {
				serviceMock.On("Create", mock.Anything, mock.Anything).
					Return(tt.mockResult, tt.mockErr).Once()
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

			req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(bodyBytes))
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

			if tt.mockCalled {
				serviceMock.AssertExpectations(t)
			}
		})
	}
}
