//go:build integration
// +build integration

package repository

import (
	"testing"

	"travel-backoffice-backend/internal/database/models"
	"travel-backoffice-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite defines the integration test suite for EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	factory       *testutils.EmployeeFactory
}

func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewEmployeeFactory()
}

func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *EmployeeRepositoryTestSuite) TestCreateAndGetByID() {
	employee := suite.factory.Create()

	err := suite.repo.Create(employee)
	suite.Require().NoError(err)

	found, err := suite.repo.GetByID(employee.ID)
	suite.Require().NoError(err)
	suite.Equal(employee.Email, found.Email)
	suite.Equal(models.EmployeeRoleAgent, found.Role)
	suite.Equal(models.EmployeeStatusActive, found.Status)
}

func (suite *EmployeeRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EmployeeRepositoryTestSuite) TestCreate_DuplicateEmail() {
	employee := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(employee))

	duplicate := suite.factory.WithEmail(employee.Email)
	suite.Error(suite.repo.Create(duplicate))
}

func (suite *EmployeeRepositoryTestSuite) TestCreate_DuplicatePhone() {
	employee := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(employee))

	duplicate := suite.factory.Create()
	duplicate.Phone = employee.Phone
	suite.Error(suite.repo.Create(duplicate))
}

func (suite *EmployeeRepositoryTestSuite) TestGetByEmail() {
	employee := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(employee))

	found, err := suite.repo.GetByEmail(employee.Email)
	suite.Require().NoError(err)
	suite.Equal(employee.ID, found.ID)

	_, err = suite.repo.GetByEmail("nobody@travloger.in")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EmployeeRepositoryTestSuite) TestGetByPhone() {
	employee := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(employee))

	found, err := suite.repo.GetByPhone(employee.Phone)
	suite.Require().NoError(err)
	suite.Equal(employee.ID, found.ID)
}

func (suite *EmployeeRepositoryTestSuite) TestGetAll_OrderedByName() {
	zoya := suite.factory.WithName("Zoya Khan")
	suite.Require().NoError(suite.repo.Create(zoya))

	arjun := suite.factory.WithName("Arjun Pillai")
	suite.Require().NoError(suite.repo.Create(arjun))

	employees, total, err := suite.repo.GetAll("", 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(employees, 2)
	suite.Equal("Arjun Pillai", employees[0].Name)
	suite.Equal("Zoya Khan", employees[1].Name)
}

func (suite *EmployeeRepositoryTestSuite) TestGetAll_DestinationFilter() {
	bali := suite.factory.WithDestination("Bali")
	suite.Require().NoError(suite.repo.Create(bali))

	kashmir := suite.factory.WithDestination("Kashmir")
	suite.Require().NoError(suite.repo.Create(kashmir))

	employees, total, err := suite.repo.GetAll("Kashmir", 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(employees, 1)
	suite.Equal(kashmir.ID, employees[0].ID)
}

func (suite *EmployeeRepositoryTestSuite) TestGetAll_AllMeansNoFilter() {
	suite.Require().NoError(suite.repo.Create(suite.factory.WithDestination("Bali")))
	suite.Require().NoError(suite.repo.Create(suite.factory.WithDestination("Kashmir")))

	employees, total, err := suite.repo.GetAll("all", 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(employees, 2)
}

func (suite *EmployeeRepositoryTestSuite) TestUpdate() {
	employee := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(employee))

	employee.Status = models.EmployeeStatusInactive
	employee.AuthUserID = "auth-user-42"
	suite.Require().NoError(suite.repo.Update(employee))

	found, err := suite.repo.GetByID(employee.ID)
	suite.Require().NoError(err)
	suite.Equal(models.EmployeeStatusInactive, found.Status)
	suite.Equal("auth-user-42", found.AuthUserID)
}

// TestEmployeeRepositoryTestSuite runs the test suite
func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
