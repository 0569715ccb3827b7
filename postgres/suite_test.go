package postgres_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/catalog"
	"github.com/xy-planning-network/display/postgres"
	"gorm.io/gorm"
)

type DBTestSuite struct {
	suite.Suite

	db *gorm.DB
}

// TestRunSuite runs against the database at TEST_DATABASE_URL.
// Its public schema is dropped.
func TestRunSuite(t *testing.T) {
	err := godotenv.Load("../.env")
	var pe *fs.PathError
	if err != nil && !errors.As(err, &pe) {
		t.Fatal(err)
	}

	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	suite.Run(t, new(DBTestSuite))
}

func (suite *DBTestSuite) SetupSuite() {
	var err error
	suite.db, err = postgres.Connect(
		&postgres.CxnConfig{URL: os.Getenv("TEST_DATABASE_URL"), IsTestDB: true},
		postgres.Migrations,
	)
	suite.Require().Nil(err)
}

func (suite *DBTestSuite) TearDownTest() {
	suite.Require().Nil(suite.db.Exec("TRUNCATE enum_displays").Error)
}

func (suite *DBTestSuite) TestMigrateUpIsIdempotent() {
	suite.Require().Nil(postgres.MigrateUp(suite.db, "public", postgres.Migrations))

	var count int64
	suite.Require().Nil(suite.db.Raw("SELECT count(*) FROM migrations").Scan(&count).Error)
	suite.Require().Equal(int64(len(postgres.Migrations)), count)
}

func (suite *DBTestSuite) TestSync() {
	// Arrange
	ctx := context.Background()
	c := suite.load(`
enums:
  - name: SomeStatus
    members:
      - {symbol: Fine, value: 1, display: {name: Fine Name, order: 1}}
      - {symbol: Ok, value: 2, display: {order: 2}}
      - {symbol: Good, value: 3, display: {order: 3}}
`)

	// Act
	err := postgres.Sync(ctx, suite.db, c.Enumerations()...)

	// Assert
	suite.Require().Nil(err)
	rows, err := postgres.Load(ctx, suite.db, "SomeStatus")
	suite.Require().Nil(err)
	suite.Require().Len(rows, 3)
	suite.Require().Equal("Fine Name", rows[0].Name)
	suite.Require().Equal("Ok", rows[1].Name)
	suite.Require().Equal("Good", rows[2].Symbol)

	// Arrange
	c = suite.load(`
enums:
  - name: SomeStatus
    members:
      - {symbol: Fine, value: 1, display: {name: Fine Name, order: 3}}
      - {symbol: Good, value: 3, display: {name: Good Name, order: 1}}
`)

	// Act
	err = postgres.Sync(ctx, suite.db, c.Enumerations()...)

	// Assert
	suite.Require().Nil(err)
	rows, err = postgres.Load(ctx, suite.db, "SomeStatus")
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Require().Equal("Good Name", rows[0].Name)
	suite.Require().Equal(int64(1), rows[1].Value)
	suite.Require().Equal(3, rows[1].SortOrder)
}

func (suite *DBTestSuite) TestSyncEmptyDeletes() {
	// Arrange
	ctx := context.Background()
	suite.Require().Nil(postgres.Sync(ctx, suite.db, suite.load("enums: [{name: A, members: [{symbol: X, value: 1}]}]").Enumerations()...))

	// Act
	err := postgres.Sync(ctx, suite.db, suite.load("enums: [{name: A}]").Enumerations()...)

	// Assert
	suite.Require().Nil(err)
	_, err = postgres.Load(ctx, suite.db, "A")
	suite.Require().ErrorIs(err, display.ErrNotExist)
}

func (suite *DBTestSuite) load(doc string) *catalog.Catalog {
	c, err := catalog.LoadYAML([]byte(doc))
	suite.Require().Nil(err)
	return c
}
