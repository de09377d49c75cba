package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaParametersKeepFieldOrder(t *testing.T) {
	params, required := mustSchemaParametersFor[SearchFilesInput]()
	require.NotNil(t, params)

	var names []string
	for pair := params.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	assert.Equal(t, []string{"path", "regex", "filePattern"}, names)
	assert.Equal(t, []string{"path", "regex"}, required)

	regex, ok := params.Get("regex")
	require.True(t, ok)
	assert.Equal(t, "string", regex.Type)
	assert.Equal(t, "The regular expression pattern to search for.", regex.Description)
}

func TestSchemaParametersOptionalFields(t *testing.T) {
	_, required := mustSchemaParametersFor[AttemptCompletionInput]()
	assert.Equal(t, []string{"result"}, required)
}

func TestSchemaParametersForPointerType(t *testing.T) {
	params, required := mustSchemaParametersFor[*ReadFileInput]()
	assert.Equal(t, 1, params.Len())
	assert.Equal(t, []string{"path"}, required)
}

func TestDecodeSchemaParametersDefaults(t *testing.T) {
	params, err := decodeSchemaParameters(map[string]interface{}{"type": "object"})
	require.NoError(t, err)
	assert.Equal(t, 0, params.Properties.Len())
	assert.Equal(t, []string{}, params.Required)
}
