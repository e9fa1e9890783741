package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-backoffice-backend/internal/api/handlers"
	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/mocks"
	"travel-backoffice-backend/internal/repository"
	"travel-backoffice-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LeadHandlerTestSuite defines the test suite for LeadHandler
type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockLeadService    *mocks.MockLeadServiceInterface
	mockAssignmentSvc  *mocks.MockAssignmentServiceInterface
	handler            *handlers.LeadHandler
	router             *gin.Engine
}

func (suite *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	suite.mockAssignmentSvc = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLeadHandler(suite.mockLeadService, suite.mockAssignmentSvc)

	suite.router = gin.New()
	suite.router.GET("/leads", suite.handler.ListLeads)
	suite.router.POST("/leads", suite.handler.CreateLead)
	suite.router.POST("/leads/assign", suite.handler.AssignLead)
	suite.router.GET("/leads/:id", suite.handler.GetLead)
	suite.router.PATCH("/leads/:id", suite.handler.UpdateLead)
}

func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadHandlerTestSuite) postJSON(url string, body interface{}) *httptest.ResponseRecorder {
	jsonBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LeadHandlerTestSuite) TestAssignLead_Success() {
	leadID := uuid.New()
	employeeID := uuid.New()
	now := time.Now().UTC()
	lead := &models.Lead{
		BaseModel:             models.BaseModel{ID: leadID},
		Name:                  "Asha Verma",
		Email:                 "asha@example.com",
		Destination:           "Bali",
		Status:                models.LeadStatusNew,
		AssignedEmployeeID:    &employeeID,
		AssignedEmployeeName:  "Rahul Mehta",
		AssignedEmployeeEmail: "rahul@travloger.in",
		AssignedAt:            &now,
	}

	suite.mockAssignmentSvc.EXPECT().
		AssignLead(&service.AssignLeadRequest{
			LeadID:     leadID.String(),
			EmployeeID: employeeID.String(),
		}).
		Return(lead, nil)

	w := suite.postJSON("/leads/assign", map[string]string{
		"leadId":     leadID.String(),
		"employeeId": employeeID.String(),
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Lead models.Lead `json:"lead"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Rahul Mehta", got.Lead.AssignedEmployeeName)
	assert.NotNil(suite.T(), got.Lead.AssignedEmployeeID)
}

func (suite *LeadHandlerTestSuite) TestAssignLead_MissingIDs() {
	suite.mockAssignmentSvc.EXPECT().
		AssignLead(gomock.Any()).
		Return(nil, apperrors.ErrAssignmentIDsRequired)

	w := suite.postJSON("/leads/assign", map[string]string{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got map[string]string
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "leadId and employeeId are required", got["error"])
}

func (suite *LeadHandlerTestSuite) TestAssignLead_LeadNotFound() {
	suite.mockAssignmentSvc.EXPECT().
		AssignLead(gomock.Any()).
		Return(nil, apperrors.ErrLeadNotFound)

	w := suite.postJSON("/leads/assign", map[string]string{
		"leadId":     uuid.NewString(),
		"employeeId": uuid.NewString(),
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var got map[string]string
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Lead not found", got["error"])
}

func (suite *LeadHandlerTestSuite) TestAssignLead_EmployeeNotFound() {
	suite.mockAssignmentSvc.EXPECT().
		AssignLead(gomock.Any()).
		Return(nil, apperrors.ErrEmployeeNotFound)

	w := suite.postJSON("/leads/assign", map[string]string{
		"leadId":     uuid.NewString(),
		"employeeId": uuid.NewString(),
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var got map[string]string
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Employee not found", got["error"])
}

func (suite *LeadHandlerTestSuite) TestAssignLead_StoreFailure() {
	suite.mockAssignmentSvc.EXPECT().
		AssignLead(gomock.Any()).
		Return(nil, apperrors.NewStoreError("update lead assignment", errors.New("connection reset")))

	w := suite.postJSON("/leads/assign", map[string]string{
		"leadId":     uuid.NewString(),
		"employeeId": uuid.NewString(),
	})

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func (suite *LeadHandlerTestSuite) TestCreateLead_Success() {
	lead := &models.Lead{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Asha Verma",
		Email:     "asha@example.com",
		Status:    models.LeadStatusNew,
	}
	suite.mockLeadService.EXPECT().CreateLead(gomock.Any()).Return(lead, nil)

	w := suite.postJSON("/leads", map[string]interface{}{
		"name":  "Asha Verma",
		"email": "asha@example.com",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLead_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/leads/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLead_NotFound() {
	id := uuid.New()
	suite.mockLeadService.EXPECT().GetLeadByID(id).Return(nil, apperrors.ErrLeadNotFound)

	req := httptest.NewRequest(http.MethodGet, "/leads/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *LeadHandlerTestSuite) TestListLeads_Filters() {
	employeeID := uuid.New()
	suite.mockLeadService.EXPECT().
		ListLeads(repository.LeadFilter{
			Status:             "New",
			Destination:        "Bali",
			AssignedEmployeeID: &employeeID,
		}, 10, 5).
		Return([]models.Lead{}, int64(0), nil)

	url := "/leads?status=New&destination=Bali&assigned_employee_id=" + employeeID.String() + "&limit=10&offset=5"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *LeadHandlerTestSuite) TestListLeads_InvalidEmployeeFilter() {
	req := httptest.NewRequest(http.MethodGet, "/leads?assigned_employee_id=nope", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *LeadHandlerTestSuite) TestUpdateLead_Success() {
	id := uuid.New()
	lead := &models.Lead{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Asha Verma",
		Status:    models.LeadStatusContacted,
	}
	suite.mockLeadService.EXPECT().UpdateLead(id, gomock.Any()).Return(lead, nil)

	jsonBytes, _ := json.Marshal(map[string]string{"status": "Contacted"})
	req := httptest.NewRequest(http.MethodPatch, "/leads/"+id.String(), bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestLeadHandlerTestSuite runs the test suite
func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
