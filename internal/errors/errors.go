package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Validation errors are raised
// before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictingMember describes a student that already belongs to another team.
type ConflictingMember struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	CurrentTeam string `json:"currentTeam"`
	TeamSize    int    `json:"teamSize,omitempty"`
}

// ConflictError is returned when the requested change collides with state the
// server already holds (student on another team, idea already agreed).
// Message is surfaced to the user verbatim.
type ConflictError struct {
	Message  string
	TeamName string
	TeamSize int
	Members  []ConflictingMember
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

// TransientError wraps network failures and 5xx responses. The caller may
// retry; local state is left at its last known good value.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed, please try again", e.Op)
	}
	return fmt.Sprintf("%s failed, please try again: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrStudentNotFound    = &NotFoundError{Entity: "student"}
	ErrMemberNotFound     = &NotFoundError{Entity: "team member"}
	ErrIdeaNotFound       = &NotFoundError{Entity: "idea"}
	ErrInvitationNotFound = &NotFoundError{Entity: "invitation"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrStudentExists    = &AlreadyExistsError{Entity: "student", Context: "with this email"}
	ErrInvitationExists = &AlreadyExistsError{Entity: "invitation", Context: "for this team"}
)

// Validation Errors
var (
	ErrEmailRequired      = &ValidationError{Field: "email", Message: "please enter an email address"}
	ErrInvalidEmailDomain = &ValidationError{Field: "email", Message: "email domain is not an institutional student address"}
	ErrTeamNameRequired   = &ValidationError{Field: "groupName", Message: "team name is required"}
	ErrTeamFull           = &ValidationError{Field: "groupMembers", Message: "team is full"}
	ErrNotInGroup         = &ValidationError{Message: "User is not in a group"}
	ErrNoAgreement        = &ValidationError{Message: "No agreement to remove"}
	ErrAgreementExists    = &ValidationError{Message: "Another idea is already agreed. Remove it first."}
	ErrVisibilityLocked   = &ValidationError{Field: "visible", Message: "visibility is locked while the idea is agreed"}
	ErrInvitationFinal    = &ValidationError{Field: "status", Message: "invitation is no longer pending"}
)

// Conflict Errors
var (
	ErrIdeaAlreadyAgreed = &ConflictError{Message: "Another idea is already agreed. Remove it first."}
	ErrMemberInOtherTeam = &ConflictError{Message: "Some members are already in another team"}
)

// Authorization Errors
var (
	ErrNotTeamMember = &AuthorizationError{Message: "you are not a member of this team"}
	ErrActorMismatch = &AuthorizationError{Message: "request user does not match the authenticated user"}
	ErrMissingToken  = &AuthorizationError{Message: "missing bearer token"}
	ErrInvalidToken  = &AuthorizationError{Message: "invalid bearer token"}
	ErrNotYourInvite = &AuthorizationError{Message: "invitation belongs to another user"}
)

// Action Errors
var (
	ErrRemovalNotConfirmed = errors.New("leaving the team was not confirmed")
	ErrControlBusy         = errors.New("action already in progress")
	ErrSessionClosed       = errors.New("session is closed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsTransient checks if an error is a TransientError
func IsTransient(err error) bool {
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewTransientError wraps err as a retryable failure of op
func NewTransientError(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// NewConflictError creates a ConflictError carrying the server's message
func NewConflictError(message string, members ...ConflictingMember) error {
	return &ConflictError{Message: message, Members: members}
}

// NewTeamConflictError reports that a student is an accepted member of
// another team, naming the team and its size.
func NewTeamConflictError(name, email, teamName string, teamSize int) error {
	if teamName == "" {
		teamName = "another team"
	}
	noun := "members"
	if teamSize == 1 {
		noun = "member"
	}
	who := strings.TrimSpace(name)
	if who == "" {
		who = email
	}
	return &ConflictError{
		Message: fmt.Sprintf("Cannot add %s. They are already a member of team %q (%d %s). A student can only be in ONE team at a time.",
			who, teamName, teamSize, noun),
		TeamName: teamName,
		TeamSize: teamSize,
		Members: []ConflictingMember{{
			Email:       email,
			Name:        name,
			CurrentTeam: teamName,
			TeamSize:    teamSize,
		}},
	}
}
