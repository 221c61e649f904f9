package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

// stubContactService records what Submit received.
type stubContactService struct {
	name, email, message string
	calls                int
}

func (s *stubContactService) Submit(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	s.calls++
	s.name, s.email, s.message = name, email, message
	if message == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	return &model.ContactMessage{Name: name, Email: email, Message: message}, nil
}

func (s *stubContactService) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return nil, nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func TestContactHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "message with blank name and email is accepted",
			body:           `{"name":"","email":"","message":"when do you open?"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty message is rejected",
			body:           `{"name":"Ravi","email":"ravi@example.com","message":""}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = &testValidator{validator: validator.New()}

			svc := &stubContactService{}
			h := NewContactHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Submit(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, 1, svc.calls)
				assert.Equal(t, "when do you open?", svc.message)
				assert.Equal(t, "", svc.name)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}
		})
	}
}
