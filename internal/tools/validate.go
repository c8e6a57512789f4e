package tools

import (
	"encoding/json"
	"fmt"
)

// inputSchema is the validating form of a tool's JSON-Schema input
// contract: required fields, per-field type, enum constraints and
// defaults. It covers the subset of JSON Schema the tool catalog uses.
type inputSchema struct {
	required []string
	fields   map[string]fieldSpec
}

type fieldSpec struct {
	typ    string
	enum   []string
	def    any
	hasDef bool
}

func compileSchema(raw json.RawMessage) (*inputSchema, error) {
	var doc struct {
		Type       string `json:"type"`
		Properties map[string]struct {
			Type    string          `json:"type"`
			Enum    []string        `json:"enum"`
			Default json.RawMessage `json:"default"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid input schema: %w", err)
	}
	if doc.Type != "object" {
		return nil, fmt.Errorf("input schema must describe an object, got %q", doc.Type)
	}

	s := &inputSchema{fields: make(map[string]fieldSpec, len(doc.Properties))}
	for name, prop := range doc.Properties {
		spec := fieldSpec{typ: prop.Type, enum: prop.Enum}
		if len(prop.Default) > 0 {
			var def any
			if err := json.Unmarshal(prop.Default, &def); err != nil {
				return nil, fmt.Errorf("field '%s': invalid default: %w", name, err)
			}
			coerced, err := coerceValue(name, spec, def)
			if err != nil {
				return nil, fmt.Errorf("field '%s': default violates schema", name)
			}
			spec.def = coerced
			spec.hasDef = true
		}
		s.fields[name] = spec
	}

	for _, name := range doc.Required {
		if _, ok := s.fields[name]; !ok {
			return nil, fmt.Errorf("required field '%s' has no property definition", name)
		}
		s.required = append(s.required, name)
	}
	return s, nil
}

// Validate checks args against the schema and returns the validated map
// with defaults applied. Unknown keys are dropped.
func (s *inputSchema) Validate(args map[string]any) (Arguments, error) {
	out := make(Arguments, len(s.fields))

	for name, spec := range s.fields {
		raw, ok := args[name]
		if !ok {
			if spec.hasDef {
				out[name] = spec.def
			}
			continue
		}
		v, err := coerceValue(name, spec, raw)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}

	for _, name := range s.required {
		v, ok := out[name]
		if !ok {
			return nil, &ValidationError{Field: name, Reason: "required argument is missing"}
		}
		if str, isStr := v.(string); isStr && str == "" {
			return nil, &ValidationError{Field: name, Reason: "required argument is empty"}
		}
	}

	return out, nil
}

func coerceValue(name string, spec fieldSpec, raw any) (any, error) {
	switch spec.typ {
	case "string":
		str, ok := raw.(string)
		if !ok {
			return nil, &ValidationError{Field: name, Reason: "must be a string"}
		}
		if len(spec.enum) > 0 && !contains(spec.enum, str) {
			return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("must be one of %v", spec.enum)}
		}
		return str, nil
	case "integer":
		switch n := raw.(type) {
		case int:
			return n, nil
		case float64:
			if n != float64(int(n)) {
				return nil, &ValidationError{Field: name, Reason: "must be an integer"}
			}
			return int(n), nil
		default:
			return nil, &ValidationError{Field: name, Reason: "must be an integer"}
		}
	case "object":
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, &ValidationError{Field: name, Reason: "must be an object"}
		}
		return m, nil
	default:
		return raw, nil
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
