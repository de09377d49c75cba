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
)

// Input is the typed argument record of one tool. The set of
// implementations is closed: run is unexported, so every tool added to
// decodeInput must come with its own handler in this package.
type Input interface {
	Tool() ToolName
	run(ctx context.Context, d *Dispatcher) (string, error)
}

type ExecuteCommandInput struct {
	Command string `json:"command" jsonschema_description:"The CLI command to execute. Must be valid for the user's shell."`
}

type ListFilesInput struct {
	Path      string `json:"path" jsonschema_description:"The path of the directory to list, relative to the working directory."`
	Recursive string `json:"recursive,omitempty" jsonschema_description:"Set to \"true\" to list files recursively."`
}

type ListCodeDefinitionNamesInput struct {
	Path string `json:"path" jsonschema_description:"The path of the directory to scan for top-level definitions, relative to the working directory."`
}

type SearchFilesInput struct {
	Path        string `json:"path" jsonschema_description:"The path of the directory to search in, relative to the working directory. Searched recursively."`
	Regex       string `json:"regex" jsonschema_description:"The regular expression pattern to search for."`
	FilePattern string `json:"filePattern,omitempty" jsonschema_description:"Glob pattern applied to file names, e.g. *.go. Defaults to all files."`
}

type ReadFileInput struct {
	Path string `json:"path" jsonschema_description:"The path of the file to read, relative to the working directory."`
}

type WriteToFileInput struct {
	Path    string `json:"path" jsonschema_description:"The path of the file to write to, relative to the working directory."`
	Content string `json:"content" jsonschema_description:"The full content to write to the file."`
}

type AskFollowupQuestionInput struct {
	Question string `json:"question" jsonschema_description:"The question to ask the user."`
}

type AttemptCompletionInput struct {
	Result  string `json:"result" jsonschema_description:"The result of the task."`
	Command string `json:"command,omitempty" jsonschema_description:"Optional CLI command that demonstrates the result."`
}

func (ExecuteCommandInput) Tool() ToolName          { return ToolExecuteCommand }
func (ListFilesInput) Tool() ToolName               { return ToolListFiles }
func (ListCodeDefinitionNamesInput) Tool() ToolName { return ToolListCodeDefinitionNames }
func (SearchFilesInput) Tool() ToolName             { return ToolSearchFiles }
func (ReadFileInput) Tool() ToolName                { return ToolReadFile }
func (WriteToFileInput) Tool() ToolName             { return ToolWriteToFile }
func (AskFollowupQuestionInput) Tool() ToolName     { return ToolAskFollowupQuestion }
func (AttemptCompletionInput) Tool() ToolName       { return ToolAttemptCompletion }

func (in ExecuteCommandInput) run(ctx context.Context, d *Dispatcher) (string, error) {
	return d.executeCommand(ctx, in)
}

func (in ListFilesInput) run(ctx context.Context, d *Dispatcher) (string, error) {
	return d.listFiles(ctx, in)
}

func (in ListCodeDefinitionNamesInput) run(ctx context.Context, d *Dispatcher) (string, error) {
	return d.listCodeDefinitionNames(ctx, in)
}

func (in SearchFilesInput) run(ctx context.Context, d *Dispatcher) (string, error) {
	return d.searchFiles(ctx, in)
}

func (in ReadFileInput) run(ctx context.Context, d *Dispatcher) (string, error) {
	return d.readFile(ctx, in)
}

func (in WriteToFileInput) run(ctx context.Context, d *Dispatcher) (string, error) {
	return d.writeToFile(ctx, in)
}

func (in AskFollowupQuestionInput) run(_ context.Context, _ *Dispatcher) (string, error) {
	return askFollowupQuestion(in), nil
}

func (in AttemptCompletionInput) run(_ context.Context, _ *Dispatcher) (string, error) {
	return attemptCompletion(in), nil
}

// decodeInput converts validated arguments into the typed record of name.
func decodeInput(name ToolName, args map[string]interface{}) (Input, error) {
	switch name {
	case ToolExecuteCommand:
		return decodeAs[ExecuteCommandInput](args)
	case ToolListFiles:
		return decodeAs[ListFilesInput](args)
	case ToolListCodeDefinitionNames:
		return decodeAs[ListCodeDefinitionNamesInput](args)
	case ToolSearchFiles:
		return decodeAs[SearchFilesInput](args)
	case ToolReadFile:
		return decodeAs[ReadFileInput](args)
	case ToolWriteToFile:
		return decodeAs[WriteToFileInput](args)
	case ToolAskFollowupQuestion:
		return decodeAs[AskFollowupQuestionInput](args)
	case ToolAttemptCompletion:
		return decodeAs[AttemptCompletionInput](args)
	default:
		return nil, unimplementedToolError(name)
	}
}

func decodeAs[T Input](args map[string]interface{}) (Input, error) {
	var in T
	if len(args) == 0 {
		return in, nil
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	return in, nil
}
