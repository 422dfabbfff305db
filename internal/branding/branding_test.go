package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "amentreg", CLIName())
	assert.Equal(t, "COLCON_WS_BASE", WorkspaceEnv())
	assert.Equal(t, "COLCON_INSTALL_BASE", InstallEnv())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "AMENTREG_CONFIG", EnvVar("config"))
	assert.Equal(t, "AMENTREG_LOG_LEVEL", EnvVar("log_level"))
}
