//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo_service/internal/domain/companies"
	"todo_service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(t *testing.T, method, url, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCompanyHandler_Create_Success(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	created := &companies.Company{ID: 1, Name: "Acme", Mode: "public", Rating: 4}
	mockService.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/companies", `{"name":"Acme","mode":"public","rating":4}`)

	handler.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Acme"`)
	assert.Contains(t, w.Body.String(), `"id":1`)
	mockService.AssertExpectations(t)
}

func TestCompanyHandler_Create_DuplicateName_Error(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, companies.ErrNameTaken)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/companies", `{"name":"Acme"}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Company name already exists")
}

func TestCompanyHandler_Create_MissingName_Error(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "POST", "/companies", `{"description":"no name"}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestCompanyHandler_List_Success(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	records := []*companies.Company{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Globex"},
	}
	mockService.On("List", mock.Anything).Return(records, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/companies", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
	assert.Contains(t, w.Body.String(), "Globex")
}

func TestCompanyHandler_GetByID_NotFound_Error(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("GetByID", mock.Anything, uid(42)).Return(nil, companies.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/companies/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Company ID not found")
}

func TestCompanyHandler_GetByID_InvalidID_Error(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/companies/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID")
}

func TestCompanyHandler_UpdateByID_Success(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	updated := &companies.Company{ID: 7, Name: "Initech", Mode: "private"}
	mockService.On("UpdateByID", mock.Anything, uid(7), mock.Anything).Return(updated, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, "PUT", "/companies/7", `{"name":"Initech","mode":"private"}`)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Initech")
	mockService.AssertExpectations(t)
}

func TestCompanyHandler_DeleteByID_HasUsers_Error(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("DeleteByID", mock.Anything, uid(3)).Return(nil, companies.ErrHasUsers)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/companies/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Company still has registered users")
}

func TestCompanyHandler_DeleteByID_Success(t *testing.T) {
	mockService := new(MockCompanyService)
	handler := NewCompanyHandler(mockService, testutil.SetupTestLogger(t))

	deleted := &companies.Company{ID: 3, Name: "Acme"}
	mockService.On("DeleteByID", mock.Anything, uid(3)).Return(deleted, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/companies/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Company ID: 3, name: `Acme` has been deleted successfully")
}

// uid keeps mock argument matching on uint ids explicit
func uid(v uint) uint { return v }
