package routes_test

import (
	"context"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"gradproject-teams/internal/api/routes"
	"gradproject-teams/internal/client"
	"gradproject-teams/internal/config"
	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/repository"
	"gradproject-teams/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// RoutesTestSuite drives the real router through the team client
type RoutesTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	repos     *repository.Repositories
	factories *testutils.FactorySet
	server    *httptest.Server
	cancel    context.CancelFunc
	ctx       context.Context
}

func (suite *RoutesTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repos = repository.NewRepositories(suite.base.DB)
	suite.factories = testutils.NewFactorySet()

	cfg := *suite.base.Config
	cfg.AuthEnabled = true
	cfg.JWTSecret = testutils.TestJWTSecret
	cfg.RateLimitRPS = 100
	cfg.RateLimitBurst = 100

	var ctx context.Context
	ctx, suite.cancel = context.WithCancel(context.Background())
	suite.server = httptest.NewServer(routes.SetupRoutes(ctx, suite.base.DB, &cfg))
	suite.ctx = context.Background()
}

func (suite *RoutesTestSuite) TearDownSuite() {
	suite.server.Close()
	suite.cancel()
	suite.base.TeardownTestSuite()
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *RoutesTestSuite) student(name string) *models.Student {
	st := suite.factories.Student.WithName(name)
	require.NoError(suite.T(), suite.repos.Students.Create(st))
	return st
}

// clientFor returns a client authenticated as st
func (suite *RoutesTestSuite) clientFor(st *models.Student) (*client.Client, domain.Actor) {
	c, err := client.New(&config.Config{
		APIURL: suite.server.URL,
		Token:  strings.TrimPrefix(testutils.BearerToken(suite.T(), st.Email), "Bearer "),
	})
	require.NoError(suite.T(), err)
	return c, domain.Actor{UserID: st.ID.String(), Email: st.Email, Name: st.Name}
}

func (suite *RoutesTestSuite) TestTeamLifecycle() {
	alice := suite.student("Alice Saleh")
	bob := suite.student("Bob Nasser")
	aliceClient, aliceActor := suite.clientFor(alice)
	bobClient, bobActor := suite.clientFor(bob)

	entry, err := aliceClient.LookupStudent(suite.ctx, bob.Email)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), entry.HasTeam())

	team := suite.factories.Student.Team("Falcons", alice, bob)
	stored, err := aliceClient.SyncTeam(suite.ctx, aliceActor, team)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), team, *stored)

	profile, err := bobClient.FetchProfile(suite.ctx, bob.Email)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Falcons", profile.GroupName)
	assert.Len(suite.T(), profile.GroupMembers, 2)

	stored, err = bobClient.UpdateLeader(suite.ctx, bobActor, *stored, bob.ID.String())
	require.NoError(suite.T(), err)
	leader, ok := stored.Leader()
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), bob.Email, leader.Email)

	stored, err = bobClient.RemoveMember(suite.ctx, bobActor, alice.Email)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), stored.Members, 1)

	profile, err = aliceClient.FetchProfile(suite.ctx, alice.Email)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), profile.GroupMembers)
}

func (suite *RoutesTestSuite) TestAgreementLifecycle() {
	alice := suite.student("Alice Saleh")
	bob := suite.student("Bob Nasser")
	team := suite.factories.Student.Team("Falcons", alice, bob)
	for _, st := range []*models.Student{alice, bob} {
		st.SetTeam(team)
		require.NoError(suite.T(), suite.repos.Students.Update(st))
	}
	require.NoError(suite.T(), suite.repos.Ideas.Create(suite.factories.SavedIdea.Hidden(alice.ID, "x")))
	require.NoError(suite.T(), suite.repos.Ideas.Create(suite.factories.SavedIdea.Create(bob.ID, "x")))

	aliceClient, aliceActor := suite.clientFor(alice)
	bobClient, bobActor := suite.clientFor(bob)

	require.NoError(suite.T(), aliceClient.AgreeIdea(suite.ctx, aliceActor, "x"))

	profile, err := aliceClient.FetchProfile(suite.ctx, alice.Email)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "x", profile.AgreedIdeaID)
	require.Len(suite.T(), profile.SavedIdeas, 1)
	assert.Equal(suite.T(), domain.ForcedByAgreement(false), profile.SavedIdeas[0].Visibility)

	err = bobClient.UpdateIdeaVisibility(suite.ctx, bobActor, "x", false)
	assert.True(suite.T(), apperrors.IsConflict(err))

	err = bobClient.AgreeIdea(suite.ctx, bobActor, "missing")
	assert.ErrorIs(suite.T(), err, apperrors.ErrIdeaNotFound)

	require.NoError(suite.T(), bobClient.RemoveAgreement(suite.ctx, bobActor))

	profile, err = aliceClient.FetchProfile(suite.ctx, alice.Email)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), profile.AgreedIdeaID)
	assert.Equal(suite.T(), domain.Manual(false), profile.SavedIdeas[0].Visibility)
}

func (suite *RoutesTestSuite) TestActingForAnotherStudentIsRejected() {
	alice := suite.student("Alice Saleh")
	bob := suite.student("Bob Nasser")
	aliceClient, _ := suite.clientFor(alice)
	_, bobActor := suite.clientFor(bob)

	_, err := aliceClient.SyncTeam(suite.ctx, bobActor, suite.factories.Student.Team("Falcons", bob))
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	_, err = aliceClient.FetchProfile(suite.ctx, bob.Email)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *RoutesTestSuite) TestUserIDMustBelongToCaller() {
	alice := suite.student("Alice Saleh")
	bob := suite.student("Bob Nasser")
	mallory := suite.student("Mallory Zaid")

	team := suite.factories.Student.Team("Falcons", alice)
	pending := suite.factories.Student.Member(bob, false)
	pending.Status = domain.StatusPending
	team.Members = append(team.Members, pending)
	alice.SetTeam(team)
	require.NoError(suite.T(), suite.repos.Students.Update(alice))
	require.NoError(suite.T(), suite.repos.Ideas.Create(suite.factories.SavedIdea.Create(alice.ID, "x")))
	inv := suite.factories.Invitation.Create(bob, alice, team)
	require.NoError(suite.T(), suite.repos.Invitations.Create(inv))

	malloryClient, malloryActor := suite.clientFor(mallory)
	asAlice := domain.Actor{UserID: alice.ID.String(), Email: malloryActor.Email}
	asBob := domain.Actor{UserID: bob.ID.String(), Email: malloryActor.Email}

	err := malloryClient.AgreeIdea(suite.ctx, asAlice, "x")
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	stored, err := suite.repos.Students.GetByID(alice.ID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), stored.AgreedIdeaID)

	err = malloryClient.UpdateIdeaVisibility(suite.ctx, asAlice, "x", false)
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	_, err = malloryClient.RespondToInvitation(suite.ctx, asBob, inv.ID.String(), false)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	answered, err := suite.repos.Invitations.GetByID(inv.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InvitationPending, answered.Status)

	_, err = malloryClient.ListInvitations(suite.ctx, asBob)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
