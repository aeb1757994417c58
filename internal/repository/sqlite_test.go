package repository

import (
	"testing"

	"equipment-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SQLiteRepositoryTestSuite runs the repository contract on in-memory SQLite
type SQLiteRepositoryTestSuite struct {
	contractSuite
}

// SetupTest opens a fresh database for every test
func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T())
	s.seed()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
