package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, password, email string) (*models.User, error) {
	args := m.Called(username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (string, string, *models.User, error) {
	args := m.Called(username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RevokeToken(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) GetUser(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRegisterHandler_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 15*time.Minute)
	router := setupRouter()
	router.POST("/register", handler.Register)

	user := &models.User{
		ID:       "user-123",
		Username: "reader",
		Email:    "reader@example.com",
	}
	mockAuthService.On("Register", "reader", "password123", "reader@example.com").Return(user, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "reader",
		Password: "password123",
		Email:    "reader@example.com",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user-123", response["user_id"])
	assert.Equal(t, "reader", response["username"])
	mockAuthService.AssertExpectations(t)
}

func TestRegisterHandler_Conflict(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 15*time.Minute)
	router := setupRouter()
	router.POST("/register", handler.Register)

	mockAuthService.On("Register", "reader", "password123", "reader@example.com").
		Return(nil, service.ErrNameInUse)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "reader",
		Password: "password123",
		Email:    "reader@example.com",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	// the envelope must not reveal which field collided
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Account creation failed", response["error"])
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 15*time.Minute)
	router := setupRouter()
	router.POST("/register", handler.Register)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "reader",
		Password: "short",
		Email:    "reader@example.com",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandler_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 15*time.Minute)
	router := setupRouter()
	router.POST("/login", handler.Login)

	user := &models.User{ID: "user-123", Username: "reader"}
	mockAuthService.On("Login", "reader", "password123").
		Return("access-token", "refresh-token", user, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "reader", Password: "password123"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "access-token", response.AccessToken)
	assert.Equal(t, "refresh-token", response.RefreshToken)
	assert.Equal(t, "user-123", response.UserID)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 15*time.Minute)
	router := setupRouter()
	router.POST("/login", handler.Login)

	mockAuthService.On("Login", "reader", "wrong").
		Return("", "", nil, service.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Username: "reader", Password: "wrong"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeHandler_ReturnsStreak(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 15*time.Minute)
	router := setupRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("userID", "user-123")
		handler.Me(c)
	})

	mockAuthService.On("GetUser", "user-123").Return(&models.User{
		ID:              "user-123",
		Username:        "reader",
		CurrentStreak:   7,
		LastReadingDate: "2025-06-15",
	}, nil)

	req, _ := http.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 7, response.CurrentStreak)
	assert.Equal(t, "2025-06-15", response.LastReadingDate)
}
