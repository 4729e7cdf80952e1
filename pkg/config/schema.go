package config

// schemaDoc is the JSON Schema for the on-disk dialect/fold configuration
// document (spec.md §6 "Recognized properties"). Grounded on
// core/types/validation.go, which validates decorator parameters against an
// embedded JSON Schema via santhosh-tekuri/jsonschema rather than hand
// rolled field checks.
const schemaDoc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://edlex.dev/schema/config.json",
  "type": "object",
  "required": ["schemaVersion"],
  "properties": {
    "schemaVersion": {
      "type": "string",
      "pattern": "^v[0-9]+\\.[0-9]+\\.[0-9]+$"
    },
    "less": { "type": "integer", "enum": [0, 1] },
    "scss": { "type": "integer", "enum": [0, 1] },
    "foldComment": { "type": "integer", "enum": [0, 1] },
    "foldCompact": { "type": "integer", "enum": [0, 1] },
    "foldAtElse": { "type": "integer", "enum": [0, 1] }
  },
  "additionalProperties": false
}`
