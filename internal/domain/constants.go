package domain

// Building list headings
const (
	HeadingExistingBuildings  = "Existing Buildings"
	HeadingAvailableBuildings = "Available Buildings"
)

// In-flight entry verbs
const (
	VerbBuilding  = "Building"
	VerbUpgrading = "Upgrading"
)

// Event types published by the construction service
const (
	EventTypeBuildQueued    = "construction.request.queued"
	EventTypeBuildCancelled = "construction.request.cancelled"
	EventTypeBuildCompleted = "construction.request.completed"
	EventTypeStarUpdated    = "construction.star.updated"
)
