package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// checkRequired reports the first required parameter, in declaration
// order, that is absent from args. Presence is all that is checked: an
// explicit null counts as present.
func checkRequired(spec ToolSpec, args map[string]interface{}) error {
	for _, param := range spec.Required {
		if _, ok := args[param]; !ok {
			return missingParameterError(spec.Name, param)
		}
	}
	return nil
}

// schemaCache holds compiled argument schemas keyed by tool name. Lookup
// is first-match, so the spec behind a name never changes once resolved.
type schemaCache struct {
	mu      sync.RWMutex
	schemas map[ToolName]*gojsonschema.Schema
}

func newSchemaCache() *schemaCache {
	return &schemaCache{schemas: make(map[ToolName]*gojsonschema.Schema)}
}

func (c *schemaCache) get(spec ToolSpec) (*gojsonschema.Schema, error) {
	c.mu.RLock()
	schema, ok := c.schemas[spec.Name]
	c.mu.RUnlock()
	if ok {
		return schema, nil
	}

	raw, err := json.Marshal(spec.InputSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema for %s: %w", spec.Name, err)
	}
	schema, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid schema for %s: %w", spec.Name, err)
	}

	c.mu.Lock()
	c.schemas[spec.Name] = schema
	c.mu.Unlock()
	return schema, nil
}

// validateArguments checks argument types against the spec's schema.
func (c *schemaCache) validateArguments(spec ToolSpec, args map[string]interface{}) error {
	schema, err := c.get(spec)
	if err != nil {
		return err
	}
	data, err := json.Marshal(args)
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, resultErr := range result.Errors() {
			problems = append(problems, resultErr.String())
		}
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

func parseToolArgs(argsJSON string) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	trimmed := strings.TrimSpace(argsJSON)
	if trimmed == "" || trimmed == "null" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return args, nil
}
