package service_test

import (
	"context"
	"errors"
	"testing"

	"gradproject-teams/internal/database/models"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	dbSuite
	svc *service.InvitationService
	ctx context.Context
}

func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.dbSuite.SetupTest()
	suite.svc = service.NewInvitationService(suite.repos, validator.New(), 3)
	suite.ctx = context.Background()
}

// invite stores a pending invitation from inviter's team, with the invitee
// listed as a pending member
func (suite *InvitationServiceTestSuite) invite(invitee, inviter *models.Student, team domain.Team) *models.TeamInvitation {
	pending := suite.factories.Student.Member(invitee, false)
	pending.Status = domain.StatusPending
	team.Members = append(domain.CloneMembers(team.Members), pending)
	for _, m := range team.Members {
		if !m.IsAccepted() {
			continue
		}
		st, err := suite.repos.Students.GetByEmail(m.Email)
		require.NoError(suite.T(), err)
		st.SetTeam(team)
		require.NoError(suite.T(), suite.repos.Students.Update(st))
	}
	inv := suite.factories.Invitation.Create(invitee, inviter, team)
	require.NoError(suite.T(), suite.repos.Invitations.Create(inv))
	return inv
}

func (suite *InvitationServiceTestSuite) respond(invitee *models.Student, inv *models.TeamInvitation, accept bool) (*domain.Invitation, error) {
	return suite.svc.Respond(suite.ctx, &service.RespondInvitationRequest{
		UserID:       invitee.ID.String(),
		UserEmail:    invitee.Email,
		InvitationID: inv.ID.String(),
	}, accept)
}

func (suite *InvitationServiceTestSuite) TestListInvitations() {
	alice := suite.student("Alice Saleh")
	carol := suite.student("Carol Fahad")
	suite.invite(carol, alice, suite.seedTeam("Falcons", alice))

	list, err := suite.svc.ListInvitations(suite.ctx, carol.ID.String(), carol.Email)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), "Falcons", list[0].TeamName)
	assert.True(suite.T(), list[0].IsPending())

	empty, err := suite.svc.ListInvitations(suite.ctx, alice.ID.String(), "")
	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), empty)
	assert.Empty(suite.T(), empty)

	_, err = suite.svc.ListInvitations(suite.ctx, "not-a-uuid", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	_, err = suite.svc.ListInvitations(suite.ctx, uuid.NewString(), "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)

	_, err = suite.svc.ListInvitations(suite.ctx, carol.ID.String(), alice.Email)
	assert.ErrorIs(suite.T(), err, apperrors.ErrActorMismatch)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *InvitationServiceTestSuite) TestAcceptJoinsTeam() {
	alice := suite.student("Alice Saleh")
	bob := suite.student("Bob Nasser")
	carol := suite.student("Carol Fahad")
	inv := suite.invite(carol, alice, suite.seedTeam("Falcons", alice, bob))

	out, err := suite.respond(carol, inv, true)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusAccepted, out.Status)

	for _, st := range []*models.Student{alice, bob, carol} {
		team := suite.reload(st).Team()
		assert.Equal(suite.T(), "Falcons", team.Name, st.Email)
		require.Len(suite.T(), team.Members, 3, st.Email)
		idx := team.IndexByEmail(carol.Email)
		require.GreaterOrEqual(suite.T(), idx, 0)
		assert.Equal(suite.T(), domain.StatusAccepted, team.Members[idx].Status)
	}

	_, err = suite.respond(carol, inv, true)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationFinal)
}

func (suite *InvitationServiceTestSuite) TestAcceptUsesSnapshotWhenInviterLeft() {
	alice := suite.student("Alice Saleh")
	carol := suite.student("Carol Fahad")
	inv := suite.invite(carol, alice, suite.seedTeam("Falcons", alice))
	alice.SetTeam(domain.Team{})
	require.NoError(suite.T(), suite.repos.Students.Update(alice))

	_, err := suite.respond(carol, inv, true)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Falcons", suite.reload(carol).GroupName)
	assert.True(suite.T(), suite.reload(alice).Team().IsEmpty())
}

func (suite *InvitationServiceTestSuite) TestAcceptWhileInAnotherTeam() {
	alice := suite.student("Alice Saleh")
	carol := suite.student("Carol Fahad")
	dave := suite.student("Dave Omari")
	inv := suite.invite(carol, alice, suite.seedTeam("Falcons", alice))
	suite.seedTeam("Owls", carol, dave)

	_, err := suite.respond(carol, inv, true)

	var conflict *apperrors.ConflictError
	require.True(suite.T(), errors.As(err, &conflict))
	assert.Equal(suite.T(), "Owls", conflict.Members[0].CurrentTeam)
	stored, err := suite.repos.Invitations.GetByID(inv.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InvitationPending, stored.Status)
}

func (suite *InvitationServiceTestSuite) TestAcceptFullTeam() {
	alice := suite.student("Alice Saleh")
	bob := suite.student("Bob Nasser")
	carol := suite.student("Carol Fahad")
	dave := suite.student("Dave Omari")
	inv := suite.invite(dave, alice, suite.seedTeam("Falcons", alice, bob, carol))

	_, err := suite.respond(dave, inv, true)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamFull)
	assert.True(suite.T(), suite.reload(dave).Team().IsEmpty())
}

func (suite *InvitationServiceTestSuite) TestRejectDropsPendingMember() {
	alice := suite.student("Alice Saleh")
	carol := suite.student("Carol Fahad")
	inv := suite.invite(carol, alice, suite.seedTeam("Falcons", alice))

	out, err := suite.respond(carol, inv, false)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusRejected, out.Status)

	team := suite.reload(alice).Team()
	assert.False(suite.T(), team.Contains(carol.Email))
	assert.True(suite.T(), suite.reload(carol).Team().IsEmpty())
}

func (suite *InvitationServiceTestSuite) TestRespondErrors() {
	alice := suite.student("Alice Saleh")
	carol := suite.student("Carol Fahad")
	inv := suite.invite(carol, alice, suite.seedTeam("Falcons", alice))

	_, err := suite.respond(alice, inv, true)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotYourInvite)

	_, err = suite.svc.Respond(suite.ctx, &service.RespondInvitationRequest{
		UserID:       carol.ID.String(),
		UserEmail:    carol.Email,
		InvitationID: uuid.NewString(),
	}, true)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)

	_, err = suite.svc.Respond(suite.ctx, &service.RespondInvitationRequest{UserID: carol.ID.String()}, true)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InvitationServiceTestSuite) TestRespondForAnotherStudent() {
	alice := suite.student("Alice Saleh")
	carol := suite.student("Carol Fahad")
	mallory := suite.student("Mallory Zaid")
	inv := suite.invite(carol, alice, suite.seedTeam("Falcons", alice))

	_, err := suite.svc.Respond(suite.ctx, &service.RespondInvitationRequest{
		UserID:       carol.ID.String(),
		UserEmail:    mallory.Email,
		InvitationID: inv.ID.String(),
	}, false)
	assert.ErrorIs(suite.T(), err, apperrors.ErrActorMismatch)

	stored, err := suite.repos.Invitations.GetByID(inv.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InvitationPending, stored.Status)
	assert.True(suite.T(), suite.reload(alice).Team().Contains(carol.Email))
}

func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
