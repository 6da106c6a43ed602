package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
	"github.com/nsthome/institute-api/pkg/response"
)

type authServiceMock struct {
	registerResp *models.AuthResponse
	registerErr  error
	loginResp    *models.AuthResponse
	loginErr     error
	lastSignup   models.SignupRequest
	lastLogin    models.LoginRequest
}

func (m *authServiceMock) Register(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	m.lastSignup = req
	return m.registerResp, m.registerErr
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	m.lastLogin = req
	return m.loginResp, m.loginErr
}

func TestAuthHandlerSignup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &authServiceMock{
		registerResp: &models.AuthResponse{Token: "tok", User: models.UserProfile{ID: "s1", Role: models.RoleStudent, Status: models.StatusPending}},
	}
	handler := NewAuthHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"name":"Riya Das","phone":"9000000001","class":"Class 8"}`
	req, _ := http.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Signup(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "9000000001", mockSvc.lastSignup.Phone)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Error)
}

func TestAuthHandlerSignupMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Signup(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerSignupConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &authServiceMock{
		registerErr: appErrors.Clone(appErrors.ErrPhoneRegistered, "this phone number is already registered, please login"),
	}
	handler := NewAuthHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"name":"Riya Das","phone":"9000000001","class":"Class 8"}`
	req, _ := http.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Signup(c)
	require.Equal(t, http.StatusConflict, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrPhoneRegistered.Code, envelope.Error.Code)
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &authServiceMock{
		loginResp: &models.AuthResponse{Token: "tok", User: models.UserProfile{ID: "s1", Role: models.RoleStudent, Status: models.StatusApproved}},
	}
	handler := NewAuthHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"name":"Riya Das","phone":"9000000001","class":"Class 8"}`
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Class 8", mockSvc.lastLogin.Class)
}

func TestAuthHandlerLoginNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &authServiceMock{
		loginErr: appErrors.Clone(appErrors.ErrNotFound, "no matching record found, please verify your name, phone and class"),
	}
	handler := NewAuthHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"name":"Nobody","phone":"9000000009","class":"Class 8"}`
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
