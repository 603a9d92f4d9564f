package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SettingsSchema returns a JSON Schema for the settings file, used by
// `pagegrid config show --schema` to validate hand-edited configs.
func SettingsSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Settings{})
	sch.Title = "pagegrid settings"
	sch.Description = "User settings stored in settings.json under the pagegrid config directory."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
