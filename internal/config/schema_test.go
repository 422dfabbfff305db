package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsValidConfig(t *testing.T) {
	issues, err := Validate([]byte("workspace_root: /ws\ninstall_base: install\nlog_level: info\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateAcceptsEmptyDocument(t *testing.T) {
	issues, err := Validate([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateRejectsWrongType(t *testing.T) {
	issues, err := Validate([]byte("install_base: 3\n"))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	assert.Equal(t, "/install_base", issues[0].Path)
	assert.Equal(t, "type", issues[0].Keyword)
}

func TestValidateRejectsUnknownLevel(t *testing.T) {
	issues, err := Validate([]byte("log_level: chatty\n"))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	assert.Equal(t, "/log_level", issues[0].Path)
}

func TestValidateRejectsUnknownKey(t *testing.T) {
	issues, err := Validate([]byte("install_dir: install\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
}

func TestValidateRejectsMalformedYAML(t *testing.T) {
	_, err := Validate([]byte("workspace_root: [unclosed\n"))
	require.Error(t, err)
}

func TestInvalidFileErrorMessage(t *testing.T) {
	err := &InvalidFileError{
		Path: "/etc/amentreg.yaml",
		Issues: []Issue{
			{Path: "/install_base", Message: "got number, want string", Keyword: "type"},
		},
	}
	msg := err.Error()
	assert.Contains(t, msg, "/etc/amentreg.yaml")
	assert.Contains(t, msg, "1 issue(s)")
	assert.Contains(t, msg, "/install_base: got number, want string")
}
