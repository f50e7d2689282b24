// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file, merged over defaults and
// validated before any other component is initialized.
package config
