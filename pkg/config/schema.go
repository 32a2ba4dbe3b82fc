package config

import (
	"encoding/json"

	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/invopop/jsonschema"
)

// SchemaID identifies the published schema
const SchemaID = "https://github.com/arthur-debert/twcfg/tailwind.schema.json"

// JSONSchema returns the JSON schema of the config file, for editors that
// validate tailwind.json / tailwind.yaml as the user types.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := r.Reflect(&File{})

	schema.ID = SchemaID
	schema.Title = "Utility CSS configuration"
	schema.Description = "Content globs, theme extensions and plugins consumed by the CSS build."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal schema")
	}
	return append(data, '\n'), nil
}
