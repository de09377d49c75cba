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


package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaJSON returns the JSON schema for config.json.
func SchemaJSON() string {
	return configSchemaJSON
}

// ExampleConfigJSON returns an example config covering every key.
func ExampleConfigJSON() string {
	return exampleConfigJSON
}

var configSchema = gojsonschema.NewStringLoader(configSchemaJSON)

// validateConfigJSON checks a config file against the embedded schema.
// Unknown keys and wrongly typed values are rejected.
func validateConfigJSON(data []byte) error {
	result, err := gojsonschema.Validate(configSchema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		problems = append(problems, resultErr.String())
	}
	return fmt.Errorf("%s", strings.Join(problems, "; "))
}

const configSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Toolmanager Config",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "workdir": { "type": "string" },
    "home_dir": { "type": "string" },
    "list_files_limit": { "type": "integer", "minimum": 1 },
    "command_history_file": { "type": "string" },
    "command": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "shell": { "type": "string" },
        "timeout": { "type": "string", "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$" }
      }
    },
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "max_chars": { "type": "integer", "minimum": 0 },
        "strip_ansi": { "type": "boolean" },
        "strip_control": { "type": "boolean" }
      }
    },
    "traversal": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "respect_gitignore": { "type": "boolean" }
      }
    },
    "approval": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "require": { "type": "array", "items": { "type": "string" } }
      }
    }
  }
}`

const exampleConfigJSON = `{
  "workdir": ".",
  "list_files_limit": 1000,
  "command_history_file": ".toolmanager_history",
  "command": {
    "shell": "/bin/bash",
    "timeout": "2m"
  },
  "output": {
    "max_chars": 20000,
    "strip_ansi": true,
    "strip_control": true
  },
  "traversal": {
    "respect_gitignore": true
  },
  "approval": {
    "require": ["execute_command", "write_to_file"]
  }
}`
