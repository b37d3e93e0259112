//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"todo_service/internal/domain/auth"
	"todo_service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoginRequest(t *testing.T, username, password string) *http.Request {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService, testutil.SetupTestLogger(t))

	token := &auth.AccessToken{Token: "signed-token", Type: auth.TokenTypeBearer}
	mockService.On("Login", mock.Anything, "bob", "s3cret").Return(token, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newLoginRequest(t, "bob", "s3cret")

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"signed-token"`)
	assert.Contains(t, w.Body.String(), `"token_type":"bearer"`)
	mockService.AssertExpectations(t)
}

func TestAuthHandler_Login_UnknownUser_Error(t *testing.T) {
	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("Login", mock.Anything, "ghost", "s3cret").Return(nil, auth.ErrUnknownUser)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newLoginRequest(t, "ghost", "s3cret")

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "Incorrect username or password")
}

func TestAuthHandler_Login_WrongPassword_Error(t *testing.T) {
	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("Login", mock.Anything, "bob", "wrong").Return(nil, auth.ErrInvalidPassword)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newLoginRequest(t, "bob", "wrong")

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "Incorrect username or password")
}

// Unknown-user and wrong-password responses must be byte-identical apart
// from the token issuance path taken server-side.
func TestAuthHandler_Login_FailuresIndistinguishable(t *testing.T) {
	responses := make([]string, 0, 2)

	for _, failure := range []error{auth.ErrUnknownUser, auth.ErrInvalidPassword} {
		mockService := new(MockAuthService)
		handler := NewAuthHandler(mockService, testutil.SetupTestLogger(t))
		mockService.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, failure)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newLoginRequest(t, "bob", "whatever")

		handler.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		responses = append(responses, w.Body.String())
	}

	assert.Equal(t, responses[0], responses[1])
}

func TestAuthHandler_Login_MissingFields_Error(t *testing.T) {
	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService, testutil.SetupTestLogger(t))

	req, err := http.NewRequest("POST", "/login", strings.NewReader("username=bob"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect username or password")
	mockService.AssertNotCalled(t, "Login")
}
