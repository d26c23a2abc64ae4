// Package utils provides small helpers shared by the CLI entry points.
package utils
