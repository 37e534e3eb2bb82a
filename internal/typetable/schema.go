package typetable

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// overrideSchema describes the shape of a --type-table JSON override: a
// flat object mapping type_dir names to "raw" or "generic". Validating
// against an explicit schema, rather than hand-rolled field checks,
// keeps the contract in one declarative place the way the teacher
// codebase declares its MCP tool schemas with *jsonschema.Schema.
var overrideSchema = &jsonschema.Schema{
	Type: "object",
	AdditionalProperties: &jsonschema.Schema{
		Type: "string",
		Enum: []any{"raw", "generic"},
	},
}

// LoadOverride parses and validates a JSON type-table override document
// and returns the extra entries to Merge onto the default Table. A
// malformed or schema-invalid document is a startup-time ConfigError,
// never a per-input failure (SPEC_FULL.md §7).
func LoadOverride(data []byte) (map[string]Kind, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, cerrors.New(cerrors.KindConfig, "parse type table override", err)
	}

	resolved, err := overrideSchema.Resolve(nil)
	if err != nil {
		return nil, cerrors.New(cerrors.KindConfig, "resolve type table schema", err)
	}
	if err := resolved.Validate(raw); err != nil {
		return nil, cerrors.New(cerrors.KindConfig, "validate type table override", err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, cerrors.New(cerrors.KindConfig, "decode type table override", err)
	}

	out := make(map[string]Kind, len(m))
	for name, kindStr := range m {
		switch kindStr {
		case "raw":
			out[name] = KindRaw
		case "generic":
			out[name] = KindGeneric
		default:
			return nil, cerrors.New(cerrors.KindConfig, "decode type table override",
				fmt.Errorf("entry %q: unknown kind %q", name, kindStr))
		}
	}
	return out, nil
}
