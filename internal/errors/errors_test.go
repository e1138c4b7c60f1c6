package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "student"}
		assert.Equal(t, "student not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "idea"}
		err2 := &NotFoundError{Entity: "idea"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrStudentNotFound, ErrIdeaNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrStudentNotFound)))
		assert.False(t, IsNotFound(ErrControlBusy))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		assert.Equal(t, "validation error: No agreement to remove", ErrNoAgreement.Error())
	})

	t.Run("errors.Is matches field and message", func(t *testing.T) {
		err := NewValidationError("email", ErrInvalidEmailDomain.Message)
		assert.True(t, errors.Is(err, ErrInvalidEmailDomain))
		assert.False(t, errors.Is(err, ErrEmailRequired))
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrTeamFull))
		assert.False(t, IsValidation(ErrStudentNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("team conflict names team and size", func(t *testing.T) {
		err := NewTeamConflictError("Sara", "s@stu.bu.edu.sa", "Phoenix", 3)

		var conflict *ConflictError
		assert.True(t, errors.As(err, &conflict))
		assert.Equal(t, "Phoenix", conflict.TeamName)
		assert.Equal(t, 3, conflict.TeamSize)
		assert.Contains(t, err.Error(), `"Phoenix"`)
		assert.Contains(t, err.Error(), "(3 members)")
		assert.Len(t, conflict.Members, 1)
	})

	t.Run("singular member and unnamed team", func(t *testing.T) {
		err := NewTeamConflictError("", "s@stu.bu.edu.sa", "", 1)
		assert.Contains(t, err.Error(), "s@stu.bu.edu.sa")
		assert.Contains(t, err.Error(), `"another team" (1 member)`)
	})

	t.Run("errors.Is by message", func(t *testing.T) {
		err := NewConflictError(ErrIdeaAlreadyAgreed.Message)
		assert.True(t, errors.Is(err, ErrIdeaAlreadyAgreed))
		assert.False(t, errors.Is(err, ErrMemberInOtherTeam))
		assert.True(t, errors.Is(err, &ConflictError{}))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(fmt.Errorf("sync: %w", ErrMemberInOtherTeam)))
		assert.False(t, IsConflict(ErrNoAgreement))
	})
}

func TestTransientError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransientError("fetch snapshot", cause)

	assert.True(t, IsTransient(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "fetch snapshot failed, please try again: connection refused", err.Error())
	assert.Equal(t, "sync failed, please try again", (&TransientError{Op: "sync"}).Error())
	assert.False(t, IsTransient(ErrStudentNotFound))
}

func TestAuthorizationError(t *testing.T) {
	assert.True(t, IsAuthorization(ErrNotTeamMember))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.False(t, IsAuthorization(ErrNotInGroup))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "invitation already exists for this team", ErrInvitationExists.Error())
	assert.True(t, IsAlreadyExists(ErrStudentExists))
	assert.False(t, IsAlreadyExists(ErrStudentNotFound))
}
