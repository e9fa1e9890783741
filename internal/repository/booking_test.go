//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"travel-backoffice-backend/internal/database/models"
	"travel-backoffice-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BookingRepositoryTestSuite defines the integration test suite for BookingRepository
type BookingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BookingRepository
	factory       *testutils.BookingFactory
	leadFactory   *testutils.LeadFactory
}

func (suite *BookingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBookingRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewBookingFactory()
	suite.leadFactory = testutils.NewLeadFactory()
}

func (suite *BookingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *BookingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *BookingRepositoryTestSuite) TestCreateAndGetByID() {
	booking := suite.factory.Create()

	err := suite.repo.Create(booking)
	suite.Require().NoError(err)

	found, err := suite.repo.GetByID(booking.ID)
	suite.Require().NoError(err)
	suite.Equal(booking.Customer, found.Customer)
	suite.Equal(models.BookingStatusPending, found.Status)
	suite.Equal(models.PaymentStatusPending, found.PaymentStatus)
}

func (suite *BookingRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *BookingRepositoryTestSuite) TestGetAll_StatusFilter() {
	pending := suite.factory.WithStatus(models.BookingStatusPending)
	suite.Require().NoError(suite.repo.Create(pending))

	confirmed := suite.factory.WithStatus(models.BookingStatusConfirmed)
	suite.Require().NoError(suite.repo.Create(confirmed))

	bookings, total, err := suite.repo.GetAll(BookingFilter{Status: string(models.BookingStatusConfirmed)}, 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(bookings, 1)
	suite.Equal(confirmed.ID, bookings[0].ID)
}

func (suite *BookingRepositoryTestSuite) TestGetAll_LeadFilter() {
	lead := suite.leadFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(lead).Error)

	linked := suite.factory.WithLead(lead.ID)
	suite.Require().NoError(suite.repo.Create(linked))

	unlinked := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(unlinked))

	bookings, total, err := suite.repo.GetAll(BookingFilter{LeadID: &lead.ID}, 50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(bookings, 1)
	suite.Equal(linked.ID, bookings[0].ID)
}

func (suite *BookingRepositoryTestSuite) TestGetAll_NewestFirst() {
	older := suite.factory.Create()
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.repo.Create(older))

	newer := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(newer))

	bookings, _, err := suite.repo.GetAll(BookingFilter{}, 50, 0)
	suite.Require().NoError(err)
	suite.Require().Len(bookings, 2)
	suite.Equal(newer.ID, bookings[0].ID)
}

func (suite *BookingRepositoryTestSuite) TestUpdate() {
	booking := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(booking))

	booking.Status = models.BookingStatusConfirmed
	booking.PaymentStatus = models.PaymentStatusPaid
	booking.PaymentID = "pay_9f3k2"
	suite.Require().NoError(suite.repo.Update(booking))

	found, err := suite.repo.GetByID(booking.ID)
	suite.Require().NoError(err)
	suite.Equal(models.BookingStatusConfirmed, found.Status)
	suite.Equal(models.PaymentStatusPaid, found.PaymentStatus)
	suite.Equal("pay_9f3k2", found.PaymentID)
}

// TestBookingRepositoryTestSuite runs the test suite
func TestBookingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryTestSuite))
}
