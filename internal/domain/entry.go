package domain

// EntryKind tags the variant held by an Entry
type EntryKind int

const (
	EntryKindHeading EntryKind = iota
	EntryKindExistingBuilding
	EntryKindNewBuildCandidate
)

func (k EntryKind) String() string {
	switch k {
	case EntryKindHeading:
		return "heading"
	case EntryKindExistingBuilding:
		return "existing_building"
	case EntryKindNewBuildCandidate:
		return "new_build_candidate"
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one row of the assembled building list.
//
// Heading entries carry only Title. ExistingBuilding entries carry Building,
// BuildRequest or both (a brand-new construction has no Building yet).
// NewBuildCandidate entries carry only Design.
type Entry struct {
	Kind            EntryKind     `json:"kind"`
	Title           string        `json:"title,omitempty"`
	Building        *Building     `json:"building,omitempty"`
	BuildRequest    *BuildRequest `json:"build_request,omitempty"`
	Design          *Design       `json:"design,omitempty"`
	UpgradeEligible bool          `json:"upgrade_eligible"`
}

// HeadingEntry builds a heading row
func HeadingEntry(title string) Entry {
	return Entry{Kind: EntryKindHeading, Title: title}
}

// DesignID returns the design the entry refers to, or "" for headings
func (e Entry) DesignID() string {
	switch {
	case e.Building != nil:
		return e.Building.DesignID
	case e.BuildRequest != nil:
		return e.BuildRequest.DesignID
	case e.Design != nil:
		return e.Design.ID
	}
	return ""
}

// Verb describes the in-flight work on an existing-building entry
func (e Entry) Verb() string {
	if e.BuildRequest == nil {
		return ""
	}
	if e.Building == nil {
		return VerbBuilding
	}
	return VerbUpgrading
}
