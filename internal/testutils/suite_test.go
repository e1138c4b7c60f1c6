package testutils

import (
	"testing"

	"gradproject-teams/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestSuiteMigratesSchema(t *testing.T) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()

	m := s.DB.Migrator()
	assert.True(t, m.HasTable(&models.Student{}))
	assert.True(t, m.HasTable(&models.SavedIdea{}))
	assert.True(t, m.HasTable(&models.TeamInvitation{}))
}

func TestCleanTestDBEmptiesTables(t *testing.T) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()

	f := NewFactorySet()
	student := f.Student.WithName("Dana Ali")
	require.NoError(t, s.DB.Create(student).Error)
	require.NoError(t, s.DB.Create(f.SavedIdea.Create(student.ID, "i1")).Error)

	s.CleanTestDB()

	var count int64
	require.NoError(t, s.DB.Model(&models.Student{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, s.DB.Model(&models.SavedIdea{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStudentFactoryTeam(t *testing.T) {
	f := NewStudentFactory()
	a, b := f.WithName("Dana Ali"), f.WithName("Omar Saleh")

	team := f.Team("Falcons", a, b)

	require.Len(t, team.Members, 2)
	assert.Equal(t, "dana.ali@stu.bu.edu.sa", team.Members[0].Email)
	assert.True(t, team.Members[0].IsLeader)
	assert.False(t, team.Members[1].IsLeader)
	assert.Equal(t, 1, team.LeaderCount())
}
