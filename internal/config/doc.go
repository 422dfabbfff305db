// Package config resolves the workspace inputs for a registration run. The
// workspace root and install base come from the environment colcon exports
// (COLCON_WS_BASE, COLCON_INSTALL_BASE), optionally backed by a YAML file
// that is validated against an embedded JSON schema before it is read.
package config
