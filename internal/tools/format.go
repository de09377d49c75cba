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

import "fmt"

// Fixed response texts. The model is prompted with these strings, so
// they must not change.
const (
	noFilesFound       = "No files found or you do not have permission to view this directory."
	noDefinitionsFound = "No code definitions found."
	noMatchesFound     = "No matches found."
	toolDenied         = "The user denied this operation."
)

// FormatToolError wraps an operation failure in the error envelope.
func FormatToolError(msg string) string {
	return fmt.Sprintf("The tool execution failed with the following error:\n<e>\n%s\n</e>", msg)
}

// FormatToolDenied is returned when the user rejects an invocation.
func FormatToolDenied() string {
	return toolDenied
}

// FormatToolDeniedFeedback is returned when the user rejects an
// invocation and says why.
func FormatToolDeniedFeedback(feedback string) string {
	return fmt.Sprintf("The user denied this operation and provided the following feedback:\n<feedback>\n%s\n</feedback>", feedback)
}

func formatFileCreated(readablePath string) string {
	return "New file created successfully at " + readablePath
}

func formatFileUpdated(diffBody string) string {
	return "File updated successfully. Changes:\n\n" + diffBody
}

func formatTruncated(limit int) string {
	return fmt.Sprintf("\n\n(Truncated at %d results. Try listing files in subdirectories if you need to explore further.)", limit)
}

func deniedResponse(approval Approval) Response {
	if approval.Feedback != "" {
		return Response{Text: FormatToolDeniedFeedback(approval.Feedback)}
	}
	return Response{Text: FormatToolDenied()}
}
