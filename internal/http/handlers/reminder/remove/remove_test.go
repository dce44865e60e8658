package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spacedrifters/reminder-backend/internal/http/middlewarectx"
	services "github.com/spacedrifters/reminder-backend/internal/services/reminder"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, ownerEmail, id string) error {
	args := m.Called(ctx, ownerEmail, id)
	return args.Error(0)
}

func newRequest(t *testing.T, id, email string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reminders/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	if email != "" {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.AccountEmail, email))
	}
	return req
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const validID = "3e2a1d74-9a0f-4a4f-9a1e-7b2f1d3c5e6f"

	tests := []struct {
		name           string
		id             string
		email          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное удаление",
			id:    validID,
			email: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "user@example.com", validID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"deleted_id":"` + validID + `"`,
		},
		{
			name:  "некорректный id",
			id:    "abc",
			email: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "user@example.com", "abc").
					Return(services.ErrInvalidID)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
		{
			name:  "чужое или несуществующее напоминание",
			id:    validID,
			email: "other@example.com",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "other@example.com", validID).
					Return(services.ErrNotFoundOrUnauthorized)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"reminder not found"}`,
		},
		{
			name:           "владелец не определен",
			id:             validID,
			email:          "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:  "ошибка сервиса",
			id:    validID,
			email: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "user@example.com", validID).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete reminder"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := newRequest(t, tt.id, tt.email)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
