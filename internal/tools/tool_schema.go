// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tools

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/567-labs/instructor-go/pkg/instructor"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// schemaParameters is the subset of a generated JSON schema a ToolSpec keeps.
type schemaParameters struct {
	Properties *ParameterMap `json:"properties"`
	Required   []string      `json:"required"`
}

// mustSchemaParametersFor derives ordered parameters and the required list
// from the json and jsonschema_description tags of T.
func mustSchemaParametersFor[T any]() (*ParameterMap, []string) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		panic("schema type is nil")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	params, err := schemaParametersForType(t)
	if err != nil {
		panic(err)
	}
	return params.Properties, params.Required
}

func schemaParametersForType(t reflect.Type) (schemaParameters, error) {
	schema, err := instructor.NewSchema(t)
	if err != nil {
		return schemaParameters{}, err
	}

	defName := t.Name()
	for _, fn := range schema.Functions {
		if fn.Name != defName {
			continue
		}
		return decodeSchemaParameters(fn.Parameters)
	}

	return schemaParameters{}, fmt.Errorf("schema definition %q not found", defName)
}

func decodeSchemaParameters(schema interface{}) (schemaParameters, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return schemaParameters{}, err
	}
	params := schemaParameters{Properties: orderedmap.New[string, Property]()}
	if err := json.Unmarshal(raw, &params); err != nil {
		return schemaParameters{}, err
	}
	if params.Properties == nil {
		params.Properties = orderedmap.New[string, Property]()
	}
	if params.Required == nil {
		params.Required = []string{}
	}
	return params, nil
}
