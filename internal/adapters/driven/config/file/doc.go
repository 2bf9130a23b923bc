// Package file provides the TOML settings store.
//
// Keys are held in memory in dot notation ("transform.case_mode") and
// written to disk as nested tables:
//
//	[transform]
//	case_mode = "title"
package file
