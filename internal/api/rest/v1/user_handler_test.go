//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"todo_service/internal/domain/auth"
	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Create_Success(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	created := &users.User{
		ID:        1,
		Username:  "bob",
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Miller",
		IsActive:  true,
		CompanyID: 1,
	}
	mockService.On("Create", mock.Anything, mock.Anything, "s3cret").Return(created, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/users",
		`{"username":"bob","email":"bob@example.com","password":"s3cret","first_name":"Bob","last_name":"Miller","company_id":1}`)

	handler.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
	assert.NotContains(t, w.Body.String(), "s3cret")
	assert.NotContains(t, w.Body.String(), "password")
	mockService.AssertExpectations(t)
}

func TestUserHandler_Create_UnknownCompany_Error(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	mockService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, companies.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/users",
		`{"username":"bob","email":"bob@example.com","password":"s3cret","first_name":"Bob","last_name":"Miller","company_id":99}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Company does not exist")
}

func TestUserHandler_Create_DuplicateUsername_Error(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	mockService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, users.ErrUsernameTaken)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/users",
		`{"username":"bob","email":"other@example.com","password":"s3cret","first_name":"Bob","last_name":"Miller","company_id":1}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already registered")
}

func TestUserHandler_Create_DuplicateEmail_Error(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	mockService.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, users.ErrEmailTaken)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/users",
		`{"username":"other","email":"bob@example.com","password":"s3cret","first_name":"Bob","last_name":"Miller","company_id":1}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestUserHandler_Create_InvalidEmail_Error(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/users",
		`{"username":"bob","email":"not-an-email","password":"s3cret","first_name":"Bob","last_name":"Miller","company_id":1}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestUserHandler_Me_Success(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	user := &users.User{ID: 1, Username: "bob", Email: "bob@example.com", CompanyID: 1}
	mockAuthService.On("ResolveUser", mock.Anything, "sometoken").Return(user, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users/me", nil)
	c.Request.Header.Set("Authorization", "Bearer sometoken")

	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
	mockAuthService.AssertExpectations(t)
}

func TestUserHandler_Me_MissingHeader_Error(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "Could not validate credentials")
	mockAuthService.AssertNotCalled(t, "ResolveUser")
}

func TestUserHandler_Me_InvalidToken_Error(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	mockAuthService.On("ResolveUser", mock.Anything, "badtoken").Return(nil, auth.ErrInvalidToken)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users/me", nil)
	c.Request.Header.Set("Authorization", "Bearer badtoken")

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "Could not validate credentials")
}

func TestUserHandler_GetByID_NotFound_Error(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	mockService.On("GetByID", mock.Anything, uid(42)).Return(nil, users.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestUserHandler_UpdateByID_PartialBody_Success(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	updated := &users.User{ID: 5, Username: "bob", Email: "new@example.com", CompanyID: 1}
	mockService.On("UpdateByID", mock.Anything, uid(5), mock.MatchedBy(func(update *users.UserUpdate) bool {
		return update.Email != nil && *update.Email == "new@example.com" && update.Username == nil
	})).Return(updated, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "PUT", "/users/5", `{"email":"new@example.com"}`)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new@example.com")
	mockService.AssertExpectations(t)
}

func TestUserHandler_DeleteByID_Success(t *testing.T) {
	mockService := new(MockUserService)
	mockAuthService := new(MockAuthService)
	handler := NewUserHandler(mockService, mockAuthService, testutil.SetupTestLogger(t))

	deleted := &users.User{ID: 5, Username: "bob", Email: "bob@example.com", CompanyID: 1}
	mockService.On("DeleteByID", mock.Anything, uid(5)).Return(deleted, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/users/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User ID: 5 has been deleted successfully")
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
}
