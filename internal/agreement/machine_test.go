package agreement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"gradproject-teams/internal/agreement"
	"gradproject-teams/internal/controls"
	"gradproject-teams/internal/domain"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/mocks"
	"gradproject-teams/internal/session"
)

type MachineTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	service   *mocks.MockIdeaService
	refresher *mocks.MockRefresher
	guard     *controls.Guard
	session   *session.Session
	machine   *agreement.Machine
	ctx       context.Context
	actor     domain.Actor
}

func (suite *MachineTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockIdeaService(suite.ctrl)
	suite.refresher = mocks.NewMockRefresher(suite.ctrl)
	suite.guard = controls.NewGuard()
	suite.ctx = context.Background()
	suite.actor = domain.Actor{UserID: "u1", Email: "alice@stu.bu.edu.sa", Name: "Alice"}
	suite.start([]domain.Member{{ID: "u1", Email: "alice@stu.bu.edu.sa", IsLeader: true}})
}

func (suite *MachineTestSuite) start(members []domain.Member) {
	if suite.session != nil {
		suite.session.Close()
	}
	suite.session = session.New(domain.User{
		ID:           "u1",
		Email:        "alice@stu.bu.edu.sa",
		Name:         "Alice",
		GroupName:    "Falcons",
		GroupMembers: members,
		SavedIdeas: []domain.SavedIdea{
			{ID: "x", Title: "Smart parking", Visibility: domain.Manual(false)},
			{ID: "y", Title: "Campus navigator", Visibility: domain.Manual(true)},
		},
	})
	suite.machine = agreement.NewMachine(suite.session, suite.service, suite.refresher, suite.guard)
}

func (suite *MachineTestSuite) TearDownTest() {
	suite.session.Close()
	suite.ctrl.Finish()
}

func (suite *MachineTestSuite) idea(id string) domain.SavedIdea {
	user := suite.session.User()
	idx := user.IdeaIndex(id)
	require.GreaterOrEqual(suite.T(), idx, 0)
	return user.SavedIdeas[idx]
}

// agree followed by remove leaves every idea with its original visibility
func (suite *MachineTestSuite) TestAgreeThenRemoveRestoresVisibility() {
	gomock.InOrder(
		suite.service.EXPECT().AgreeIdea(gomock.Any(), suite.actor, "x").Return(nil),
		suite.refresher.EXPECT().RefreshSoon(),
		suite.service.EXPECT().RemoveAgreement(gomock.Any(), suite.actor).Return(nil),
		suite.refresher.EXPECT().RefreshSoon(),
	)

	require.NoError(suite.T(), suite.machine.Agree(suite.ctx, "x"))

	x := suite.idea("x")
	assert.True(suite.T(), x.IsAgreed)
	assert.True(suite.T(), x.Visibility.Visible())
	prior, ok := x.Visibility.Prior()
	require.True(suite.T(), ok)
	assert.False(suite.T(), prior)
	assert.False(suite.T(), suite.idea("y").IsAgreed)
	id, agreed := suite.machine.Agreed()
	assert.True(suite.T(), agreed)
	assert.Equal(suite.T(), "x", id)
	assert.Equal(suite.T(), 1, agreedCount(suite.session.User().SavedIdeas))

	require.NoError(suite.T(), suite.machine.RemoveAgreement(suite.ctx))

	x = suite.idea("x")
	assert.False(suite.T(), x.IsAgreed)
	assert.False(suite.T(), x.Visibility.Visible())
	_, ok = x.Visibility.Prior()
	assert.False(suite.T(), ok)
	assert.Empty(suite.T(), suite.session.User().AgreedIdeaID)
	assert.Equal(suite.T(), domain.Manual(true), suite.idea("y").Visibility)
}

func (suite *MachineTestSuite) TestAgreeVisibleIdeaRestoresTrue() {
	suite.service.EXPECT().AgreeIdea(gomock.Any(), gomock.Any(), "y").Return(nil)
	suite.service.EXPECT().RemoveAgreement(gomock.Any(), gomock.Any()).Return(nil)
	suite.refresher.EXPECT().RefreshSoon().Times(2)

	require.NoError(suite.T(), suite.machine.Agree(suite.ctx, "y"))
	require.NoError(suite.T(), suite.machine.RemoveAgreement(suite.ctx))

	assert.Equal(suite.T(), domain.Manual(true), suite.idea("y").Visibility)
}

func (suite *MachineTestSuite) TestAgreeClearsStaleAgreedFlags() {
	suite.session.Close()
	suite.session = session.New(domain.User{
		ID:           "u1",
		Email:        "alice@stu.bu.edu.sa",
		GroupMembers: []domain.Member{{ID: "u1", Email: "alice@stu.bu.edu.sa"}},
		SavedIdeas: []domain.SavedIdea{
			{ID: "x", Visibility: domain.Manual(true)},
			{ID: "y", Visibility: domain.ForcedByAgreement(false), IsAgreed: true},
		},
	})
	suite.machine = agreement.NewMachine(suite.session, suite.service, nil, suite.guard)
	suite.service.EXPECT().AgreeIdea(gomock.Any(), gomock.Any(), "x").Return(nil)

	require.NoError(suite.T(), suite.machine.Agree(suite.ctx, "x"))

	ideas := suite.session.User().SavedIdeas
	assert.Equal(suite.T(), 1, agreedCount(ideas))
	assert.True(suite.T(), ideas[0].IsAgreed)
	assert.Equal(suite.T(), domain.Manual(false), ideas[1].Visibility)
}

func (suite *MachineTestSuite) TestAgreeRequiresGroup() {
	suite.start(nil)
	suite.service.EXPECT().AgreeIdea(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := suite.machine.Agree(suite.ctx, "x")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotInGroup)
	assert.Equal(suite.T(), "validation error: User is not in a group", err.Error())
}

func (suite *MachineTestSuite) TestAgreeWhileAgreed() {
	suite.service.EXPECT().AgreeIdea(gomock.Any(), gomock.Any(), "x").Return(nil)
	suite.refresher.EXPECT().RefreshSoon()
	require.NoError(suite.T(), suite.machine.Agree(suite.ctx, "x"))

	assert.ErrorIs(suite.T(), suite.machine.Agree(suite.ctx, "y"), apperrors.ErrAgreementExists)
	assert.Equal(suite.T(), 1, agreedCount(suite.session.User().SavedIdeas))
}

func (suite *MachineTestSuite) TestAgreeUnknownIdea() {
	assert.ErrorIs(suite.T(), suite.machine.Agree(suite.ctx, "nope"), apperrors.ErrIdeaNotFound)
}

func (suite *MachineTestSuite) TestAgreeConflictLeavesStateUntouched() {
	suite.service.EXPECT().AgreeIdea(gomock.Any(), gomock.Any(), "x").Return(apperrors.ErrIdeaAlreadyAgreed)
	before := suite.session.User()

	err := suite.machine.Agree(suite.ctx, "x")

	assert.ErrorIs(suite.T(), err, apperrors.ErrIdeaAlreadyAgreed)
	assert.Equal(suite.T(), "Another idea is already agreed. Remove it first.", err.Error())
	assert.Equal(suite.T(), before, suite.session.User())
	assert.False(suite.T(), suite.session.HasProvisional())
}

func (suite *MachineTestSuite) TestRemoveWithoutAgreement() {
	suite.service.EXPECT().RemoveAgreement(gomock.Any(), gomock.Any()).Times(0)
	assert.ErrorIs(suite.T(), suite.machine.RemoveAgreement(suite.ctx), apperrors.ErrNoAgreement)
}

func (suite *MachineTestSuite) TestRemoveFailureKeepsAgreement() {
	suite.service.EXPECT().AgreeIdea(gomock.Any(), gomock.Any(), "x").Return(nil)
	suite.refresher.EXPECT().RefreshSoon()
	require.NoError(suite.T(), suite.machine.Agree(suite.ctx, "x"))

	suite.service.EXPECT().RemoveAgreement(gomock.Any(), gomock.Any()).
		Return(apperrors.NewTransientError("agreement removal", nil))

	err := suite.machine.RemoveAgreement(suite.ctx)
	assert.True(suite.T(), apperrors.IsTransient(err))
	assert.True(suite.T(), suite.idea("x").IsAgreed)
	assert.Equal(suite.T(), "x", suite.session.User().AgreedIdeaID)
}

func (suite *MachineTestSuite) TestToggleVisibility() {
	suite.service.EXPECT().UpdateIdeaVisibility(gomock.Any(), gomock.Any(), "x", true).Return(nil)

	visible, err := suite.machine.ToggleVisibility(suite.ctx, "x")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), visible)
	assert.Equal(suite.T(), domain.Manual(true), suite.idea("x").Visibility)
	assert.Equal(suite.T(), domain.Manual(true), suite.idea("y").Visibility)
}

func (suite *MachineTestSuite) TestToggleFailureKeepsValue() {
	suite.service.EXPECT().UpdateIdeaVisibility(gomock.Any(), gomock.Any(), "y", false).
		Return(apperrors.NewTransientError("visibility update", nil))

	visible, err := suite.machine.ToggleVisibility(suite.ctx, "y")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), visible)
	assert.True(suite.T(), suite.idea("y").Visibility.Visible())
}

func (suite *MachineTestSuite) TestToggleLockedWhileAgreed() {
	suite.service.EXPECT().AgreeIdea(gomock.Any(), gomock.Any(), "x").Return(nil)
	suite.refresher.EXPECT().RefreshSoon()
	require.NoError(suite.T(), suite.machine.Agree(suite.ctx, "x"))

	assert.False(suite.T(), suite.machine.CanToggle("x"))
	assert.True(suite.T(), suite.machine.CanToggle("y"))

	_, err := suite.machine.ToggleVisibility(suite.ctx, "x")
	assert.ErrorIs(suite.T(), err, apperrors.ErrVisibilityLocked)
}

func (suite *MachineTestSuite) TestSameIdeaSerializedWithAgreement() {
	release, err := suite.guard.TryAcquire(controls.KeyAgreement, controls.IdeaKey("x"))
	require.NoError(suite.T(), err)
	defer release()

	_, err = suite.machine.ToggleVisibility(suite.ctx, "x")
	assert.ErrorIs(suite.T(), err, apperrors.ErrControlBusy)
	assert.False(suite.T(), suite.machine.CanToggle("x"))

	suite.service.EXPECT().UpdateIdeaVisibility(gomock.Any(), gomock.Any(), "y", false).Return(nil)
	_, err = suite.machine.ToggleVisibility(suite.ctx, "y")
	assert.NoError(suite.T(), err)
}

func TestMachineTestSuite(t *testing.T) {
	suite.Run(t, new(MachineTestSuite))
}

func agreedCount(ideas []domain.SavedIdea) int {
	n := 0
	for _, idea := range ideas {
		if idea.IsAgreed {
			n++
		}
	}
	return n
}
