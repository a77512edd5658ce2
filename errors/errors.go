package errors

import "fmt"

// Partition engine
var (
	ErrEmptyInput                = fmt.Errorf("no participants to partition")
	ErrInvalidTeamCount          = fmt.Errorf("invalid team count")
	ErrDuplicateOrMissingCaptain = fmt.Errorf("captains must be two distinct participants or none")
	ErrIndexOutOfRange           = fmt.Errorf("index out of range")
	// ErrInvariantViolated signals a bug in the engine, never a bad input.
	ErrInvariantViolated = fmt.Errorf("partition invariant violated")
)

// Roster and wheel
var (
	ErrTooManyCaptains = fmt.Errorf("captain count already matches team count")
	ErrCaptainSwap     = fmt.Errorf("captains cannot be picked as swap target")
	ErrNoTeams         = fmt.Errorf("no teams have been created yet")
	ErrRosterNotReady  = fmt.Errorf("roster cannot be split into the requested teams")
	ErrSkillOutOfRange = fmt.Errorf("skill out of range")
	ErrEmptyLabel      = fmt.Errorf("choice label is empty")
	ErrWheelFull       = fmt.Errorf("wheel has reached its maximum number of choices")
	ErrEmptyWheel      = fmt.Errorf("wheel has no choices")
	ErrChoiceNotFound  = fmt.Errorf("choice not found")
)
