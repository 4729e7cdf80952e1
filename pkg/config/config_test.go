package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/edlex/pkg/config"
)

func TestParseValidDocument(t *testing.T) {
	raw := []byte(`{"schemaVersion":"v1.0.0","less":1,"scss":0}`)
	cfg, err := config.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Less)
	assert.Equal(t, 0, cfg.Scss)
	// foldCompact/foldAtElse default to 1 when omitted.
	assert.Equal(t, 1, cfg.FoldCompact)
	assert.Equal(t, 1, cfg.FoldAtElse)
}

func TestParseExplicitZeroOverridesDefault(t *testing.T) {
	raw := []byte(`{"schemaVersion":"v1.0.0","foldCompact":0,"foldAtElse":0}`)
	cfg, err := config.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.FoldCompact)
	assert.Equal(t, 0, cfg.FoldAtElse)
}

func TestParseRejectsBadJSON(t *testing.T) {
	_, err := config.Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseRejectsSchemaViolation(t *testing.T) {
	_, err := config.Parse([]byte(`{"schemaVersion":"v1.0.0","less":2}`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := config.Parse([]byte(`{"schemaVersion":"v1.0.0","bogus":1}`))
	assert.Error(t, err)
}

func TestParseRejectsOldSchemaVersion(t *testing.T) {
	_, err := config.Parse([]byte(`{"schemaVersion":"v0.9.0"}`))
	assert.Error(t, err)
}

func TestParseRejectsMalformedSemver(t *testing.T) {
	_, err := config.Parse([]byte(`{"schemaVersion":"not-semver"}`))
	assert.Error(t, err)
}

func TestPropertyIntsRoundTrip(t *testing.T) {
	cfg, err := config.Parse([]byte(`{"schemaVersion":"v1.0.0","less":1,"foldComment":1}`))
	require.NoError(t, err)
	props := cfg.PropertyInts()
	assert.Equal(t, 1, props[config.PropLess])
	assert.Equal(t, 0, props[config.PropScss])
	assert.Equal(t, 1, props[config.PropFoldComment])
}
