package catalog

import "errors"

// Sentinel errors for catalog construction and loading
var (
	ErrDuplicateDesign   = errors.New("duplicate design")
	ErrUnknownDependency = errors.New("unknown dependency")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// ==================== Schema ====================

const (
	// SchemaName is the name the embedded designs schema is registered under
	SchemaName = "designs.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
)

// Validation error formats, used with domain.ErrInvalidDesign
const (
	ErrFmtDesignAtIndexEmpty  = "%w: design at index %d has empty id"
	ErrFmtDesignInvalidKind   = "%w: design '%s' has unknown kind %q"
	ErrFmtDesignNegativeCap   = "%w: design '%s' has a negative cap"
	ErrFmtDesignNegativeTime  = "%w: design '%s' has negative build time"
	ErrFmtUpgradeNegativeTime = "%w: design '%s' level %d has negative build time"
)
