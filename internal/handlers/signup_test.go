package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/idea-board/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSignupper)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"pw1"}`,
			mockSetup: func(m *MockSignupper) {
				m.EXPECT().Signup(gomock.Any(), "alice", "pw1").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"username": "alice"},
		},
		{
			name: "empty password is accepted",
			body: `{"username":"alice","password":""}`,
			mockSetup: func(m *MockSignupper) {
				m.EXPECT().Signup(gomock.Any(), "alice", "").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"username": "alice"},
		},
		{
			name: "username taken",
			body: `{"username":"alice","password":"pw1"}`,
			mockSetup: func(m *MockSignupper) {
				m.EXPECT().Signup(gomock.Any(), "alice", "pw1").Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"pw"}`,
			mockSetup: func(m *MockSignupper) {
				m.EXPECT().Signup(gomock.Any(), "bob", "pw").Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
		{
			name:         "wrong field type",
			body:         `{"username":42,"password":"pw"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
		{
			name:         "missing password",
			body:         `{"username":"alice"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username and password are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockSignupper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewSignupHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
