package config

import (
	"fmt"
	"os"

	"github.com/colcon-tools/amentreg/internal/branding"
	"github.com/colcon-tools/amentreg/internal/registry"
	"github.com/spf13/viper"
)

const (
	fileType = "yaml"

	KeyWorkspaceRoot = "workspace_root"
	KeyInstallBase   = "install_base"
	KeyLogLevel      = "log_level"

	DefaultLogLevel = "warn"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	WorkspaceRoot string
	InstallBase   string
	LogLevel      string
	ConfigFile    string // empty when no file was read
}

// Registry returns the registrar inputs.
func (s Settings) Registry() registry.Config {
	return registry.Config{
		WorkspaceRoot: s.WorkspaceRoot,
		InstallBase:   s.InstallBase,
	}
}

// FileFromEnv returns the config file named by AMENTREG_CONFIG, if any.
func FileFromEnv() string {
	return os.Getenv(branding.EnvVar("config"))
}

// Load resolves Settings from the environment and, when configFile is not
// empty, from that YAML file. Environment values win over the file. A
// variable that is set to the empty string counts as set, so an empty
// COLCON_WS_BASE disables registration even if the file names a workspace.
func Load(configFile string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.AllowEmptyEnv(true)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	binds := map[string]string{
		KeyWorkspaceRoot: branding.WorkspaceEnv(),
		KeyInstallBase:   branding.InstallEnv(),
		KeyLogLevel:      branding.EnvVar(KeyLogLevel),
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s to %s: %w", key, env, err)
		}
	}

	if configFile != "" {
		if err := ValidateFile(configFile); err != nil {
			return nil, err
		}
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	return &Settings{
		WorkspaceRoot: v.GetString(KeyWorkspaceRoot),
		InstallBase:   v.GetString(KeyInstallBase),
		LogLevel:      v.GetString(KeyLogLevel),
		ConfigFile:    configFile,
	}, nil
}
