package release

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// releaseSchemaID names the embedded schema inside the compiler.
const releaseSchemaID = "release.json"

//go:embed schema/release.json
var releaseSchemaDocument []byte

// compileReleaseSchema compiles the schema of POST /v1/releases bodies.
func compileReleaseSchema() (*jsonschema.Schema, error) {
	document, err := jsonschema.UnmarshalJSON(bytes.NewReader(releaseSchemaDocument))
	if err != nil {
		return nil, fmt.Errorf("unmarshal release schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(releaseSchemaID, document); err != nil {
		return nil, fmt.Errorf("add release schema: %w", err)
	}

	compiled, err := compiler.Compile(releaseSchemaID)
	if err != nil {
		return nil, fmt.Errorf("compile release schema: %w", err)
	}

	return compiled, nil
}

// validateBody checks raw JSON against schema.
func validateBody(schema *jsonschema.Schema, body []byte) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("validate body: %w", err)
	}

	return nil
}

// schemaField returns the top-level body field the first schema failure points at,
// or an empty string when err is not a schema failure.
func schemaField(err error) string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return ""
	}

	for leaf := validationErr; leaf != nil; {
		if len(leaf.InstanceLocation) > 0 {
			return leaf.InstanceLocation[0]
		}

		switch k := leaf.ErrorKind.(type) {
		case *kind.Required:
			if len(k.Missing) > 0 {
				return k.Missing[0]
			}
		case *kind.AdditionalProperties:
			if len(k.Properties) > 0 {
				return k.Properties[0]
			}
		}

		if len(leaf.Causes) == 0 {
			break
		}

		leaf = leaf.Causes[0]
	}

	return ""
}
