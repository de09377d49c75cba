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
	"strings"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ToolName identifies one of the built-in tools.
type ToolName string

const (
	ToolExecuteCommand          ToolName = "execute_command"
	ToolListFiles               ToolName = "list_files"
	ToolListCodeDefinitionNames ToolName = "list_code_definition_names"
	ToolSearchFiles             ToolName = "search_files"
	ToolReadFile                ToolName = "read_file"
	ToolWriteToFile             ToolName = "write_to_file"
	ToolAskFollowupQuestion     ToolName = "ask_followup_question"
	ToolAttemptCompletion       ToolName = "attempt_completion"
)

// AllToolNames returns every built-in tool name in catalogue order.
func AllToolNames() []ToolName {
	return []ToolName{
		ToolExecuteCommand,
		ToolListFiles,
		ToolListCodeDefinitionNames,
		ToolSearchFiles,
		ToolReadFile,
		ToolWriteToFile,
		ToolAskFollowupQuestion,
		ToolAttemptCompletion,
	}
}

func (n ToolName) String() string {
	return string(n)
}

// Property describes a single tool parameter.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ParameterMap keeps parameters in declaration order.
type ParameterMap = orderedmap.OrderedMap[string, Property]

// ToolSpec is the declared schema of a tool. Specs are treated as
// immutable once registered.
type ToolSpec struct {
	Name        ToolName      `json:"name"`
	Description string        `json:"description"`
	Parameters  *ParameterMap `json:"parameters"`
	Required    []string      `json:"required"`
}

// InputSchema renders the spec as a JSON schema object.
func (s ToolSpec) InputSchema() map[string]interface{} {
	props := s.Parameters
	if props == nil {
		props = orderedmap.New[string, Property]()
	}
	required := s.Required
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// ParameterNames returns parameter names in declaration order.
func (s ToolSpec) ParameterNames() []string {
	if s.Parameters == nil {
		return nil
	}
	names := make([]string, 0, s.Parameters.Len())
	for pair := s.Parameters.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// ToolInvocation is a single request to run a tool.
type ToolInvocation struct {
	ID        string                 `json:"id,omitempty"`
	Name      ToolName               `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// NewInvocation builds an invocation with a fresh ID.
func NewInvocation(name ToolName, args map[string]interface{}) ToolInvocation {
	return ToolInvocation{ID: uuid.NewString(), Name: name, Arguments: args}
}

func (inv *ToolInvocation) ensureID() {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
}

// BlockType is the kind of a rich content block.
type BlockType string

const (
	BlockText  BlockType = "text"
	BlockImage BlockType = "image"
)

// ContentBlock is one element of a rich tool response.
type ContentBlock struct {
	Type      BlockType `json:"type"`
	Text      string    `json:"text,omitempty"`
	MediaType string    `json:"media_type,omitempty"`
	Data      string    `json:"data,omitempty"`
}

// Response is the result of a tool invocation. Operations only produce
// Text; Blocks is carried through for callers that assemble rich results.
type Response struct {
	Text    string         `json:"text"`
	Blocks  []ContentBlock `json:"blocks,omitempty"`
	IsError bool           `json:"is_error,omitempty"`
}

// String flattens the response into plain text.
func (r Response) String() string {
	if len(r.Blocks) == 0 {
		return r.Text
	}
	var parts []string
	if r.Text != "" {
		parts = append(parts, r.Text)
	}
	for _, block := range r.Blocks {
		if block.Type == BlockText && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n")
}
