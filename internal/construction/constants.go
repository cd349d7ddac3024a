package construction

// Log messages
const (
	LogMsgBuildQueued      = "Build request queued"
	LogMsgUpgradeQueued    = "Upgrade request queued"
	LogMsgRequestCancelled = "Build request cancelled"
	LogMsgRequestCompleted = "Build request completed"
	LogMsgRequestDropped   = "Finished request cannot be applied, dropping it"
	LogMsgDuplicateUpgrade = "Building already has an earlier upgrade request, dropping this one"
	LogMsgPublishFailed    = "Failed to publish construction event"
	LogMsgViewSkipped      = "Building view assembled with skipped entries"
	LogMsgEmpireLoaded     = "Empire state loaded"
	LogMsgEmpireSeeded     = "Empire store seeded from state file"
	LogMsgSettleCompleted  = "Settled finished build requests"
	LogMsgStarPersisted    = "Star snapshot persisted"
)

// Error message formats
const (
	ErrMsgReadEmpireFailed  = "failed to read empire state file: %w"
	ErrMsgParseEmpireFailed = "failed to parse empire state: %w"
	ErrMsgDecodeStarUpdated = "failed to decode star update: %w"
	ErrMsgSnapshotFailed    = "failed to snapshot star '%s': %w"
)
