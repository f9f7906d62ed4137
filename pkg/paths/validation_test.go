package paths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{"empty path", "", "path cannot be empty"},
		{"valid path", "/home/user/file.txt", ""},
		{"path with null bytes", "/home/user\x00/file.txt", "null bytes"},
		{"excessively long path", "/" + strings.Repeat("a", 4097), "exceeds maximum length"},
		{"path at max length", "/" + strings.Repeat("a", 4095), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey("wshobson_agents"))
	assert.Error(t, ValidateKey(""))
	assert.Error(t, ValidateKey("a/b"))
	assert.Error(t, ValidateKey(".."))
	assert.Error(t, ValidateKey("bad\tkey"))
}

func TestIsHiddenPath(t *testing.T) {
	assert.True(t, IsHiddenPath("/x/.git"))
	assert.True(t, IsHiddenPath(".DS_Store"))
	assert.False(t, IsHiddenPath("/x/agent.md"))
}

func TestHasSegment(t *testing.T) {
	assert.True(t, HasSegment("tools/examples/a.md", "examples"))
	assert.True(t, HasSegment("examples/a.md", "examples"))
	assert.False(t, HasSegment("tools/my-examples/a.md", "examples"))
	assert.False(t, HasSegment("tools/examples.md", "examples"))
}

func TestRelativePath(t *testing.T) {
	rel, err := RelativePath("/a/b", "/a/b/c/d.md")
	assert.NoError(t, err)
	assert.Equal(t, "c/d.md", rel)
}
