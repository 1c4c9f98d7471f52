// Package config manages user-level settings stored at ~/.scaffold2dev/config.yaml.
// Every key can also be supplied through a SCAFFOLD2DEV_-prefixed environment
// variable, which takes precedence over the file.
package config
