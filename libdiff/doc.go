// Package libdiff compares decoded payloads.
package libdiff
