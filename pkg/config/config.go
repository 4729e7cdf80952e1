// Package config loads and validates the host-facing dialect/fold
// configuration document named in spec.md §6 ("Recognized properties").
package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
)

// Recognized property names, exactly as spec.md §6 names them. These are
// the keys an accessor.Accessor.PropertyInt implementation should answer.
const (
	PropLess        = "lexer.css.less.language"
	PropScss        = "lexer.css.scss.language"
	PropFoldComment = "fold.comment"
	PropFoldCompact = "fold.compact"
	PropFoldAtElse  = "fold.at.else"
)

// MinSchemaVersion is the oldest config schemaVersion this build accepts.
const MinSchemaVersion = "v1.0.0"

// Config is the parsed, validated on-disk document.
type Config struct {
	SchemaVersion string `json:"schemaVersion"`
	Less          int    `json:"less"`
	Scss          int    `json:"scss"`
	FoldComment   int    `json:"foldComment"`
	FoldCompact   int    `json:"foldCompact"`
	FoldAtElse    int    `json:"foldAtElse"`
}

var compiledSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", strings.NewReader(schemaDoc)); err != nil {
		panic("edlex/config: invalid embedded schema: " + err.Error())
	}
	s, err := compiler.Compile("config.json")
	if err != nil {
		panic("edlex/config: schema did not compile: " + err.Error())
	}
	compiledSchema = s
}

// Parse validates raw JSON against the embedded schema, checks the
// schemaVersion compatibility gate via golang.org/x/mod/semver (grounded on
// core/types/validation.go's identical pairing of jsonschema + x/mod/semver),
// and decodes it into a Config.
func Parse(raw []byte) (*Config, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("edlex: config is not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("edlex: config failed schema validation: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("edlex: decoding config: %w", err)
	}

	if !semver.IsValid(cfg.SchemaVersion) {
		return nil, fmt.Errorf("edlex: config schemaVersion %q is not valid semver", cfg.SchemaVersion)
	}
	if semver.Compare(cfg.SchemaVersion, MinSchemaVersion) < 0 {
		return nil, fmt.Errorf("edlex: config schemaVersion %s is older than the minimum supported %s",
			cfg.SchemaVersion, MinSchemaVersion)
	}

	// foldCompact and foldAtElse default to 1 per spec.md §6 when the
	// document omits them; an explicit "0" still wins.
	if !hasKey(doc, "foldCompact") {
		cfg.FoldCompact = 1
	}
	if !hasKey(doc, "foldAtElse") {
		cfg.FoldAtElse = 1
	}

	return &cfg, nil
}

func hasKey(doc interface{}, key string) bool {
	m, ok := doc.(map[string]interface{})
	if !ok {
		return false
	}
	_, ok = m[key]
	return ok
}

// PropertyInts returns the configuration as the name->value map an
// accessor.Accessor.PropertyInt implementation can serve directly.
func (c *Config) PropertyInts() map[string]int {
	return map[string]int{
		PropLess:        c.Less,
		PropScss:        c.Scss,
		PropFoldComment: c.FoldComment,
		PropFoldCompact: c.FoldCompact,
		PropFoldAtElse:  c.FoldAtElse,
	}
}
