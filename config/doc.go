// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every path must exist and every descriptive tag must be set; a missing value
// aborts the run before any input is read.
package config
