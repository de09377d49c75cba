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


package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"toolmanager/internal/tools"
)

// exportTools writes the registry's tool definitions in the request
// format of the named provider.
func exportTools(w io.Writer, registry *tools.Registry, format string) error {
	var defs interface{}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "openai":
		defs = registry.OpenAITools()
	case "anthropic":
		defs = registry.AnthropicTools()
	default:
		return fmt.Errorf("unknown export format %q (expected openai or anthropic)", format)
	}

	data, err := json.MarshalIndent(defs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tool definitions: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
