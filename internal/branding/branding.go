// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary. It names the CLI and the
// environment variables colcon exports to build steps.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	WorkspaceEnv string `yaml:"workspace_env"`
	InstallEnv   string `yaml:"install_env"`
	GoModule     string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "amentreg",
			DisplayName:  "amentreg",
			Description:  "Register packages in a colcon workspace's ament resource index",
			EnvPrefix:    "AMENTREG",
			WorkspaceEnv: "COLCON_WS_BASE",
			InstallEnv:   "COLCON_INSTALL_BASE",
			GoModule:     "github.com/colcon-tools/amentreg",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "amentreg").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the prefix for the tool's own environment variables.
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// WorkspaceEnv returns the variable holding the workspace root (COLCON_WS_BASE).
func WorkspaceEnv() string { load(); return defaults.WorkspaceEnv }

// InstallEnv returns the variable holding the install base (COLCON_INSTALL_BASE).
func InstallEnv() string { load(); return defaults.InstallEnv }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("config") → "AMENTREG_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
