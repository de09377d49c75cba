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
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// BenchmarkBuiltinRegistry measures catalogue construction, schema reflection included
func BenchmarkBuiltinRegistry(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewBuiltinRegistry()
	}
}

// BenchmarkLookup measures spec resolution by name
func BenchmarkLookup(b *testing.B) {
	registry := NewBuiltinRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = registry.Lookup(ToolAttemptCompletion)
	}
}

// BenchmarkExecuteOpenAIToolCall measures dispatch overhead on a cheap tool
func BenchmarkExecuteOpenAIToolCall(b *testing.B) {
	d, err := NewDispatcher(NewBuiltinRegistry(), Options{WorkDir: b.TempDir()})
	if err != nil {
		b.Fatal(err)
	}
	toolCall := openai.ToolCall{
		ID:   "test-call",
		Type: openai.ToolTypeFunction,
		Function: openai.FunctionCall{
			Name:      "ask_followup_question",
			Arguments: `{"question": "ready?"}`,
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.ExecuteOpenAIToolCall(context.Background(), toolCall)
	}
}

// BenchmarkListFilesRecursive measures traversal and natural sorting
func BenchmarkListFilesRecursive(b *testing.B) {
	dir := b.TempDir()
	files := map[string]string{}
	for i := 0; i < 200; i++ {
		files[fmt.Sprintf("d%d/file%d.txt", i%10, i)] = ""
	}
	for name := range files {
		writeBenchFile(b, dir, name)
	}
	d, err := NewDispatcher(NewBuiltinRegistry(), Options{WorkDir: dir})
	if err != nil {
		b.Fatal(err)
	}
	inv := ToolInvocation{Name: ToolListFiles, Arguments: map[string]interface{}{"path": ".", "recursive": "true"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Execute(context.Background(), inv)
	}
}

// BenchmarkOpenAIToolsConversion measures schema export
func BenchmarkOpenAIToolsConversion(b *testing.B) {
	registry := NewBuiltinRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.OpenAITools()
	}
}

func BenchmarkCreatePrettyPatch(b *testing.B) {
	oldStr := "alpha\nbeta\ngamma\ndelta\n"
	newStr := "alpha\nBETA\ngamma\ndelta\nepsilon\n"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = createPrettyPatch("bench.txt", oldStr, newStr)
	}
}
