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
	"toolmanager/descriptions"
)

// BuiltinSpecs returns the declared schemas of the eight built-in tools
// in catalogue order.
func BuiltinSpecs() []ToolSpec {
	return []ToolSpec{
		specFor[ExecuteCommandInput](ToolExecuteCommand),
		specFor[ListFilesInput](ToolListFiles),
		specFor[ListCodeDefinitionNamesInput](ToolListCodeDefinitionNames),
		specFor[SearchFilesInput](ToolSearchFiles),
		specFor[ReadFileInput](ToolReadFile),
		specFor[WriteToFileInput](ToolWriteToFile),
		specFor[AskFollowupQuestionInput](ToolAskFollowupQuestion),
		specFor[AttemptCompletionInput](ToolAttemptCompletion),
	}
}

// NewBuiltinRegistry creates a registry holding every built-in tool.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, spec := range BuiltinSpecs() {
		r.Register(spec)
	}
	return r
}

func specFor[T Input](name ToolName) ToolSpec {
	params, required := mustSchemaParametersFor[T]()
	return ToolSpec{
		Name:        name,
		Description: descriptions.MustLoad(string(name)),
		Parameters:  params,
		Required:    required,
	}
}
