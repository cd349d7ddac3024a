package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/validation"
)

//go:embed designs.schema.json
var designsSchema []byte

// File is the on-disk catalog format
type File struct {
	Version     string      `json:"version" validate:"required"`
	Description string      `json:"description"`
	Designs     []DesignDef `json:"designs" validate:"required,min=1,dive"`
}

// DesignDef is one design as written in the catalog file
type DesignDef struct {
	ID           string              `json:"id" validate:"required"`
	Kind         string              `json:"kind" validate:"required,oneof=BUILDING SHIP"`
	DisplayName  string              `json:"display_name"`
	Description  string              `json:"description"`
	SpriteName   string              `json:"sprite_name"`
	MaxPerColony int                 `json:"max_per_colony" validate:"gte=0"`
	MaxPerEmpire int                 `json:"max_per_empire" validate:"gte=0"`
	BuildCost    domain.BuildCost    `json:"build_cost"`
	Upgrades     []domain.Upgrade    `json:"upgrades"`
	Dependencies []domain.Dependency `json:"dependencies"`
}

// Loader reads catalog files in JSON or YAML form
type Loader interface {
	Load(path string) (*Catalog, error)
	Parse(data []byte, format string) (*Catalog, error)
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a catalog loader with the designs schema registered
func NewLoader() (Loader, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.RegisterSchema(SchemaName, designsSchema); err != nil {
		return nil, fmt.Errorf("failed to register designs schema: %w", err)
	}
	return &fileLoader{
		schemaValidator: sv,
		validate:        validator.New(),
	}, nil
}

// Load reads path and builds a catalog. The format follows the file
// extension: .json, .yaml or .yml.
func (l *fileLoader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	c, err := l.Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from raw file contents
func (l *fileLoader) Parse(data []byte, format string) (*Catalog, error) {
	jsonData, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	if err := l.schemaValidator.ValidateBytes(jsonData, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, SchemaName, err)
	}

	var file File
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	if err := l.validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDesign, err)
	}

	designs := make([]domain.Design, 0, len(file.Designs))
	for _, def := range file.Designs {
		designs = append(designs, toDesign(def))
	}
	return New(designs)
}

func toDesign(def DesignDef) domain.Design {
	name := def.DisplayName
	if name == "" {
		name = DisplayName(def.ID)
	}
	return domain.Design{
		ID:           def.ID,
		Kind:         domain.DesignKind(def.Kind),
		DisplayName:  name,
		Description:  def.Description,
		SpriteName:   def.SpriteName,
		MaxPerColony: def.MaxPerColony,
		MaxPerEmpire: def.MaxPerEmpire,
		BuildCost:    def.BuildCost,
		Upgrades:     def.Upgrades,
		Dependencies: def.Dependencies,
	}
}

// DisplayName derives a display name from a design id: "ore_mine" becomes
// "Ore Mine"
func DisplayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

func toJSON(data []byte, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		return data, nil
	case "yaml", "yml":
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
