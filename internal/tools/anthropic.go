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
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicTools returns the registry as Anthropic tool definitions.
func (r *Registry) AnthropicTools() []anthropic.ToolUnionParam {
	specs := r.Specs()
	out := make([]anthropic.ToolUnionParam, 0, len(specs))
	for _, spec := range specs {
		required := spec.Required
		if required == nil {
			required = []string{}
		}
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        string(spec.Name),
			Description: anthropic.String(spec.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: spec.InputSchema()["properties"],
				Required:   required,
			},
		}})
	}
	return out
}

// ExecuteAnthropicToolUse runs a tool_use block, either decoded from a
// Messages API response or built by the caller.
func (d *Dispatcher) ExecuteAnthropicToolUse(ctx context.Context, block anthropic.ToolUseBlock) (Response, error) {
	input := block.Input
	if len(input) == 0 {
		input = json.RawMessage(block.JSON.Input.Raw())
	}
	return d.ExecuteJSON(ctx, block.ID, ToolName(block.Name), input)
}

// AnthropicToolResult wraps a response as a tool_result content block.
func AnthropicToolResult(toolUseID string, resp Response) anthropic.ContentBlockParamUnion {
	return anthropic.NewToolResultBlock(toolUseID, resp.String(), resp.IsError)
}
