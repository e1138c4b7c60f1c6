package service_test

import (
	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"
	"gradproject-teams/internal/repository"
	"gradproject-teams/internal/testutils"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// dbSuite is shared by the service suites that run against a real database
type dbSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	repos     *repository.Repositories
	factories *testutils.FactorySet
}

func (s *dbSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.repos = repository.NewRepositories(s.base.DB)
	s.factories = testutils.NewFactorySet()
}

func (s *dbSuite) TearDownSuite() {
	s.base.TeardownTestSuite()
}

func (s *dbSuite) SetupTest() {
	s.base.SetupTest()
}

func (s *dbSuite) student(name string) *models.Student {
	st := s.factories.Student.WithName(name)
	require.NoError(s.T(), s.repos.Students.Create(st))
	return st
}

// seedTeam stores team on every student, as a completed sync would
func (s *dbSuite) seedTeam(name string, students ...*models.Student) domain.Team {
	team := s.factories.Student.Team(name, students...)
	for _, st := range students {
		st.SetTeam(team)
		require.NoError(s.T(), s.repos.Students.Update(st))
	}
	return team
}

func (s *dbSuite) reload(st *models.Student) *models.Student {
	fresh, err := s.repos.Students.GetByID(st.ID)
	require.NoError(s.T(), err)
	return fresh
}

func (s *dbSuite) idea(st *models.Student, ideaID string) *models.SavedIdea {
	idea, err := s.repos.Ideas.GetByStudentAndIdea(st.ID, ideaID)
	require.NoError(s.T(), err)
	return idea
}
