package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"

	// Construction error messages
	ErrMsgGetStarFailed      = "Failed to load star"
	ErrMsgGetViewFailed      = "Failed to assemble building list"
	ErrMsgGetProgressFailed  = "Failed to compute build progress"
	ErrMsgQueueBuildFailed   = "Failed to queue construction"
	ErrMsgQueueUpgradeFailed = "Failed to queue upgrade"
	ErrMsgCancelFailed       = "Failed to cancel build request"
)

// Path parameter names
const (
	ParamStar     = "star"
	ParamColony   = "colony"
	ParamBuilding = "building"
	ParamRequest  = "request"
)

// Success messages
const (
	MsgBuildQueued     = "Construction queued"
	MsgUpgradeQueued   = "Upgrade queued"
	MsgRequestCanceled = "Build request cancelled"
)
