package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backoffice-backend/internal/api/handlers"
	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmployeeHandlerTestSuite defines the test suite for EmployeeHandler
type EmployeeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockEmployeeServiceInterface
	handler     *handlers.EmployeeHandler
	router      *gin.Engine
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockEmployeeServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEmployeeHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/employees", suite.handler.ListEmployees)
	suite.router.POST("/employees", suite.handler.CreateEmployee)
	suite.router.GET("/employees/:id", suite.handler.GetEmployee)
	suite.router.PATCH("/employees/:id", suite.handler.UpdateEmployee)
}

func (suite *EmployeeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_Success() {
	employee := &models.Employee{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Rahul Mehta",
		Email:     "rahul@travloger.in",
		Phone:     "+919876543210",
		Role:      models.EmployeeRoleAgent,
		Status:    models.EmployeeStatusActive,
	}
	suite.mockService.EXPECT().CreateEmployee(gomock.Any()).Return(employee, nil)

	jsonBytes, _ := json.Marshal(map[string]string{
		"name":  "Rahul Mehta",
		"email": "rahul@travloger.in",
		"phone": "9876543210",
	})
	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got struct {
		Employee models.Employee `json:"employee"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "+919876543210", got.Employee.Phone)
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_DuplicateEmail() {
	suite.mockService.EXPECT().CreateEmployee(gomock.Any()).Return(nil, apperrors.ErrEmployeeEmailExists)

	jsonBytes, _ := json.Marshal(map[string]string{
		"name":  "Rahul Mehta",
		"email": "rahul@travloger.in",
		"phone": "9876543210",
	})
	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_InvalidPhone() {
	suite.mockService.EXPECT().CreateEmployee(gomock.Any()).Return(nil, apperrors.ErrInvalidPhone)

	jsonBytes, _ := json.Marshal(map[string]string{
		"name":  "Rahul Mehta",
		"email": "rahul@travloger.in",
		"phone": "12345",
	})
	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetEmployeeByID(id).Return(nil, apperrors.ErrEmployeeNotFound)

	req := httptest.NewRequest(http.MethodGet, "/employees/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var got map[string]string
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Employee not found", got["error"])
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_DestinationFilter() {
	suite.mockService.EXPECT().
		ListEmployees("Bali", 50, 0).
		Return([]models.Employee{{Name: "Rahul Mehta"}}, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/employees?destination=Bali", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Employees []models.Employee `json:"employees"`
		Total     int64             `json:"total"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Employees, 1)
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployee_Success() {
	id := uuid.New()
	employee := &models.Employee{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Rahul Mehta",
		Status:    models.EmployeeStatusInactive,
	}
	suite.mockService.EXPECT().UpdateEmployee(id, gomock.Any()).Return(employee, nil)

	jsonBytes, _ := json.Marshal(map[string]string{"status": "Inactive"})
	req := httptest.NewRequest(http.MethodPatch, "/employees/"+id.String(), bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestEmployeeHandlerTestSuite runs the test suite
func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
