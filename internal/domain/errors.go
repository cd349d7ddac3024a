package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgDesignNotFound = "design not found"
	ErrMsgInvalidDesign  = "invalid design"

	// Eligibility errors
	ErrMsgColonyCapReached = "per-colony limit reached"
	ErrMsgEmpireCapReached = "per-empire limit reached"
	ErrMsgNotUpgradable    = "building cannot be upgraded"
	ErrMsgUpgradeInFlight  = "building already has an active upgrade"
	ErrMsgDependencies     = "dependencies not met"

	// Snapshot errors
	ErrMsgColonyNotFound   = "colony not found"
	ErrMsgStarNotFound     = "star not found"
	ErrMsgBuildingNotFound = "building not found"
	ErrMsgRequestNotFound  = "build request not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrDesignNotFound = errors.New(ErrMsgDesignNotFound)
	ErrInvalidDesign  = errors.New(ErrMsgInvalidDesign)

	ErrColonyCapReached = errors.New(ErrMsgColonyCapReached)
	ErrEmpireCapReached = errors.New(ErrMsgEmpireCapReached)
	ErrNotUpgradable    = errors.New(ErrMsgNotUpgradable)
	ErrUpgradeInFlight  = errors.New(ErrMsgUpgradeInFlight)
	ErrDependencies     = errors.New(ErrMsgDependencies)

	ErrColonyNotFound   = errors.New(ErrMsgColonyNotFound)
	ErrStarNotFound     = errors.New(ErrMsgStarNotFound)
	ErrBuildingNotFound = errors.New(ErrMsgBuildingNotFound)
	ErrRequestNotFound  = errors.New(ErrMsgRequestNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
