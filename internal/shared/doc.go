// Package shared holds helpers used across packages that belong to no
// single stage of the report.
//
// The testutil subpackage provides a capturing slog handler and writers
// for small legislature, executive and population input files.
package shared
