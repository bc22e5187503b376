// Package config holds the runtime settings of the algoviz server and CLI.
//
// Values start from Default, are overridden by ALGOVIZ_* environment
// variables (FromEnv) and finally by command-line flags (BindFlags).
// Validate must pass before a Config is used.
package config
