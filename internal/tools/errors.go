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
	"errors"
	"fmt"

	apperrors "toolmanager/internal/errors"
)

// Dispatch-level errors. These are returned to the caller as Go errors
// and never rendered into the textual error envelope.
var (
	// ErrUnknownTool indicates no registered spec matches the requested name.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrMissingParameter indicates a declared required parameter is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidArguments indicates arguments are malformed or of the wrong type.
	ErrInvalidArguments = errors.New("invalid tool arguments")

	// ErrUnimplementedTool indicates a registered name has no handler.
	ErrUnimplementedTool = errors.New("unimplemented tool")

	// ErrApproval indicates the approver failed to produce a decision.
	ErrApproval = errors.New("tool approval failed")
)

// ParameterError names the first required parameter missing from an
// invocation.
type ParameterError struct {
	Tool  ToolName
	Param string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s for tool: %s", ErrMissingParameter, e.Param, e.Tool)
}

func (e *ParameterError) Unwrap() error {
	return ErrMissingParameter
}

func unknownToolError(name ToolName) *apperrors.Error {
	return &apperrors.Error{Code: apperrors.CodeUnknownTool, Err: fmt.Errorf("%w: %s", ErrUnknownTool, name)}
}

func missingParameterError(name ToolName, param string) *apperrors.Error {
	return &apperrors.Error{Code: apperrors.CodeMissingParameter, Err: &ParameterError{Tool: name, Param: param}}
}

func invalidArgumentsError(name ToolName, detail error) *apperrors.Error {
	return &apperrors.Error{Code: apperrors.CodeInvalidArguments, Err: fmt.Errorf("%w for %s: %v", ErrInvalidArguments, name, detail)}
}

func unimplementedToolError(name ToolName) *apperrors.Error {
	return &apperrors.Error{Code: apperrors.CodeUnimplemented, Err: fmt.Errorf("%w: %s", ErrUnimplementedTool, name)}
}

func approvalError(name ToolName, err error) *apperrors.Error {
	return &apperrors.Error{Code: apperrors.CodeApproval, Err: fmt.Errorf("%w for %s: %v", ErrApproval, name, err)}
}

// NewToolExecutionError wraps an operation failure with the prefix that
// is shown to the model inside the error envelope, e.g. "Error reading file".
func NewToolExecutionError(action string, err error) *apperrors.Error {
	return apperrors.Wrap(apperrors.CodeToolExecution, "Error "+action, err)
}
