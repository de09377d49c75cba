package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatToolError(t *testing.T) {
	assert.Equal(t,
		"The tool execution failed with the following error:\n<e>\nError reading file: boom\n</e>",
		FormatToolError("Error reading file: boom"))
}

func TestDeniedResponse(t *testing.T) {
	assert.Equal(t, "The user denied this operation.", deniedResponse(Approval{}).Text)
	assert.Equal(t,
		"The user denied this operation and provided the following feedback:\n<feedback>\nnot now\n</feedback>",
		deniedResponse(Approval{Feedback: "not now"}).Text)
}

func TestConversationalTools(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	resp := run(t, d, ToolAskFollowupQuestion, map[string]interface{}{"question": "Which branch?"})
	assert.Equal(t, "Follow-up question asked: Which branch?", resp.Text)

	resp = run(t, d, ToolAttemptCompletion, map[string]interface{}{"result": "Done"})
	assert.Equal(t, "Completion attempted with result: Done", resp.Text)

	resp = run(t, d, ToolAttemptCompletion, map[string]interface{}{"result": "Done", "command": "open index.html"})
	assert.Equal(t, "Completion attempted with result: Done\nCommand to be executed: open index.html", resp.Text)
}

func TestTimeoutForTool(t *testing.T) {
	cfg := TimeoutConfig{Default: 5, PerTool: map[ToolName]time.Duration{ToolExecuteCommand: 9}}
	assert.Equal(t, time.Duration(9), cfg.TimeoutForTool(ToolExecuteCommand))
	assert.Equal(t, time.Duration(5), cfg.TimeoutForTool(ToolReadFile))
	assert.Zero(t, DefaultTimeoutConfig().TimeoutForTool(ToolReadFile))
}
