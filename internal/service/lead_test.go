package service_test

import (
	"errors"
	"testing"
	"time"

	"travel-backoffice-backend/internal/database/models"
	apperrors "travel-backoffice-backend/internal/errors"
	"travel-backoffice-backend/internal/mocks"
	"travel-backoffice-backend/internal/repository"
	"travel-backoffice-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LeadServiceTestSuite defines the test suite for LeadService
type LeadServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockLeadRepositoryInterface
	leadService *service.LeadService
}

// SetupTest sets up the test suite
func (suite *LeadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.leadService = service.NewLeadService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLead tests the happy path, defaulting travelers and status
func (suite *LeadServiceTestSuite) TestCreateLead() {
	req := &service.CreateLeadRequest{
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Phone:       "+919812345678",
		Destination: "Bali",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		suite.Equal("Asha Verma", lead.Name)
		suite.Equal(1, lead.Travelers)
		suite.Equal(models.LeadStatusNew, lead.Status)
		suite.Nil(lead.AssignedEmployeeID)
		return nil
	})

	lead, err := suite.leadService.CreateLead(req)

	suite.NoError(err)
	suite.NotNil(lead)
}

// TestCreateLeadValidation tests the validation rules for lead capture
func (suite *LeadServiceTestSuite) TestCreateLeadValidation() {
	testCases := []struct {
		name        string
		request     *service.CreateLeadRequest
		expectError bool
		errorMsg    string
	}{
		{
			name: "Valid request",
			request: &service.CreateLeadRequest{
				Name:  "Asha Verma",
				Email: "asha@example.com",
			},
			expectError: false,
		},
		{
			name: "Missing name",
			request: &service.CreateLeadRequest{
				Email: "asha@example.com",
			},
			expectError: true,
			errorMsg:    "Name",
		},
		{
			name: "Invalid email",
			request: &service.CreateLeadRequest{
				Name:  "Asha Verma",
				Email: "not-an-email",
			},
			expectError: true,
			errorMsg:    "Email",
		},
		{
			name: "Zero travelers allowed, defaulted later",
			request: &service.CreateLeadRequest{
				Name:      "Asha Verma",
				Email:     "asha@example.com",
				Travelers: 0,
			},
			expectError: false,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			err := validator.New().Struct(tc.request)
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestGetLeadByID_NotFound maps the repo miss to the API error
func (suite *LeadServiceTestSuite) TestGetLeadByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	lead, err := suite.leadService.GetLeadByID(id)

	suite.Nil(lead)
	suite.True(apperrors.IsNotFound(err))
	suite.Equal("Lead not found", err.Error())
}

// TestListLeads_ClampsLimit verifies the paging guard rails
func (suite *LeadServiceTestSuite) TestListLeads_ClampsLimit() {
	filter := repository.LeadFilter{Status: "New"}
	suite.mockRepo.EXPECT().GetAll(filter, 50, 0).Return([]models.Lead{}, int64(0), nil)

	_, _, err := suite.leadService.ListLeads(filter, 500, -3)

	suite.NoError(err)
}

// TestUpdateLead applies only the provided fields
func (suite *LeadServiceTestSuite) TestUpdateLead() {
	id := uuid.New()
	existing := &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Destination: "Bali",
		Travelers:   2,
		Status:      models.LeadStatusNew,
	}

	status := "Contacted"
	notes := "Called, asked for an itinerary"
	req := &service.UpdateLeadRequest{Status: &status, Notes: &notes}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		suite.Equal(models.LeadStatusContacted, lead.Status)
		suite.Equal(notes, lead.Notes)
		suite.Equal("Asha Verma", lead.Name)
		return nil
	})

	lead, err := suite.leadService.UpdateLead(id, req)

	suite.NoError(err)
	suite.Equal(models.LeadStatusContacted, lead.Status)
}

// TestUpdateLead_InvalidStatus rejects statuses outside the lifecycle
func (suite *LeadServiceTestSuite) TestUpdateLead_InvalidStatus() {
	status := "Archived"
	req := &service.UpdateLeadRequest{Status: &status}

	lead, err := suite.leadService.UpdateLead(uuid.New(), req)

	suite.Nil(lead)
	suite.Error(err)
}

// TestUpdateLead_StoreFailure surfaces write errors as store errors
func (suite *LeadServiceTestSuite) TestUpdateLead_StoreFailure() {
	id := uuid.New()
	name := "Asha V."
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Lead{}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(errors.New("connection reset"))

	lead, err := suite.leadService.UpdateLead(id, &service.UpdateLeadRequest{Name: &name})

	suite.Nil(lead)
	suite.True(apperrors.IsStore(err))
}

// TestLeadServiceTestSuite runs the test suite
func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
