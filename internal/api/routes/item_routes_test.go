package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"items-api/internal/api/handlers"
	"items-api/internal/api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockItemHandler is a mock implementation of ItemHandlerInterface
type MockItemHandler struct {
	mock.Mock
}

func (m *MockItemHandler) GetItems(c *gin.Context) {
	m.Called(c)
}

func (m *MockItemHandler) CreateItem(c *gin.Context) {
	m.Called(c)
	c.Status(http.StatusCreated)
}

func (m *MockItemHandler) GetItemByID(c *gin.Context) {
	m.Called(c)
}

func (m *MockItemHandler) UpdateItem(c *gin.Context) {
	m.Called(c)
}

func (m *MockItemHandler) DeleteItem(c *gin.Context) {
	m.Called(c)
}

// Ensure MockItemHandler implements the interface (compile-time check)
var _ handlers.ItemHandlerInterface = (*MockItemHandler)(nil)

func TestRegisterItemRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockItemHandler)
	router := gin.New()
	testGroup := router.Group("/api")

	routes.RegisterItemRoutes(testGroup, mockHandler)

	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/api/items"},
		{http.MethodGet, "/api/items/"},
		{http.MethodPost, "/api/items"},
		{http.MethodPost, "/api/items/"},
		{http.MethodGet, "/api/items/:id"},
		{http.MethodPut, "/api/items/:id"},
		{http.MethodDelete, "/api/items/:id"},
	}

	registeredRoutes := router.Routes()
	registeredMap := make(map[string]bool)
	for _, routeInfo := range registeredRoutes {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, registeredRoutes, len(expectedRoutes), "Number of registered routes should match expected")
	for _, expected := range expectedRoutes {
		mapKey := expected.Method + " " + expected.Path
		assert.True(t, registeredMap[mapKey], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestRegisterItemRoutes_WriteRoutesAreValidated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockItemHandler)
	router := gin.New()
	routes.RegisterItemRoutes(router.Group("/api"), mockHandler)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/items"},
		{http.MethodPut, "/api/items/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
	}

	mockHandler.AssertNotCalled(t, "CreateItem", mock.Anything)
	mockHandler.AssertNotCalled(t, "UpdateItem", mock.Anything)
}

func TestRegisterItemRoutes_ValidBodyReachesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockItemHandler)
	mockHandler.On("CreateItem", mock.Anything).Once()
	router := gin.New()
	routes.RegisterItemRoutes(router.Group("/api"), mockHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/items/",
		strings.NewReader(`{"name":"Widget1","description":"A widget for testing"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockHandler.AssertExpectations(t)
}
