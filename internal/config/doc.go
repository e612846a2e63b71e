// Package config manages the tool configuration file at ~/.mirgo/config.yaml.
// It wraps Viper and carries the defaults for the project layout paths the
// commands operate on (scripts directory, build directory, assets directory,
// and the game package to compile).
package config
