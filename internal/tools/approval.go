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

import "context"

// DefaultApprovalList names the tools that change the system.
var DefaultApprovalList = []ToolName{ToolExecuteCommand, ToolWriteToFile}

// Approval is the decision of an Approver. Feedback is optional text the
// user attached to a denial.
type Approval struct {
	Approved bool
	Feedback string
}

// Approver gates invocations of tools listed in the policy.
type Approver interface {
	Approve(ctx context.Context, inv ToolInvocation) (Approval, error)
}

// ApproverFunc adapts a function to the Approver interface.
type ApproverFunc func(ctx context.Context, inv ToolInvocation) (Approval, error)

func (f ApproverFunc) Approve(ctx context.Context, inv ToolInvocation) (Approval, error) {
	return f(ctx, inv)
}

// Policy configures which tools require approval before running.
type Policy struct {
	RequireApproval map[ToolName]bool
}

// DefaultPolicy returns the default approval policy.
func DefaultPolicy() Policy {
	return PolicyFromList(DefaultApprovalList)
}

// PolicyFromList builds a policy from a list of gated tool names.
func PolicyFromList(names []ToolName) Policy {
	gated := make(map[ToolName]bool, len(names))
	for _, name := range names {
		gated[name] = true
	}
	return Policy{RequireApproval: gated}
}

func (p Policy) requiresApproval(name ToolName) bool {
	return p.RequireApproval[name]
}
