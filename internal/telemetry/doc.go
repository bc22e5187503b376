// Package telemetry builds the structured logger shared by the server and
// the CLI. Algorithm packages never log; only the service boundary does.
package telemetry
