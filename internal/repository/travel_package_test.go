//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"travel-backoffice-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PackageRepositoryTestSuite defines the integration test suite for PackageRepository
type PackageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PackageRepository
	factory       *testutils.PackageFactory
}

func (suite *PackageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPackageRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewPackageFactory()
}

func (suite *PackageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PackageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *PackageRepositoryTestSuite) TestCreateAndGetByID() {
	pkg := suite.factory.Create()

	err := suite.repo.Create(pkg)
	suite.Require().NoError(err)

	found, err := suite.repo.GetByID(pkg.ID)
	suite.Require().NoError(err)
	suite.Equal(pkg.Name, found.Name)
	suite.Equal("bali", found.Route)
}

func (suite *PackageRepositoryTestSuite) TestGetByRoute_ExactMatch() {
	bali := suite.factory.WithRoute("bali")
	suite.Require().NoError(suite.repo.Create(bali))

	kashmir := suite.factory.WithRoute("kashmir")
	suite.Require().NoError(suite.repo.Create(kashmir))

	pkgs, err := suite.repo.GetByRoute("bali")
	suite.Require().NoError(err)
	suite.Require().Len(pkgs, 1)
	suite.Equal(bali.ID, pkgs[0].ID)

	// No partial matching on route keys
	none, err := suite.repo.GetByRoute("bal")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *PackageRepositoryTestSuite) TestGetByDestinationLike_CaseInsensitive() {
	kerala := suite.factory.WithDestination("Kerala")
	kerala.Route = "kerala"
	suite.Require().NoError(suite.repo.Create(kerala))

	bali := suite.factory.WithDestination("Bali")
	suite.Require().NoError(suite.repo.Create(bali))

	pkgs, err := suite.repo.GetByDestinationLike("%kerala%")
	suite.Require().NoError(err)
	suite.Require().Len(pkgs, 1)
	suite.Equal(kerala.ID, pkgs[0].ID)
}

func (suite *PackageRepositoryTestSuite) TestGetAll_NewestFirst() {
	older := suite.factory.Create()
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.repo.Create(older))

	newer := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(newer))

	pkgs, total, err := suite.repo.GetAll(50, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(pkgs, 2)
	suite.Equal(newer.ID, pkgs[0].ID)
}

func (suite *PackageRepositoryTestSuite) TestUpdate() {
	pkg := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(pkg))

	pkg.Price = 64999
	pkg.DurationDays = 9
	suite.Require().NoError(suite.repo.Update(pkg))

	found, err := suite.repo.GetByID(pkg.ID)
	suite.Require().NoError(err)
	suite.Equal(float64(64999), found.Price)
	suite.Equal(9, found.DurationDays)
}

func (suite *PackageRepositoryTestSuite) TestDelete() {
	pkg := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(pkg))

	suite.Require().NoError(suite.repo.Delete(pkg.ID))

	_, err := suite.repo.GetByID(pkg.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PackageRepositoryTestSuite) TestDelete_MissingIDIsNoop() {
	suite.NoError(suite.repo.Delete(uuid.New()))
}

// TestPackageRepositoryTestSuite runs the test suite
func TestPackageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PackageRepositoryTestSuite))
}
