// Package testutil provides helpers shared by atomdoc's tests.
//
// Key components:
//   - CreateFile / ReadFile: fixture files under t.TempDir()
//   - Isolate: a process environment free of ATOMDOC_* settings, with the
//     log file redirected into a temporary state directory
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
