package store

import (
	"fmt"

	"shopfront/domain"
)

// New constructs a domain.Storage by kind: "memory", "file" or "sqlite".
// For file and sqlite stores, provide the location in path; for memory,
// path is ignored.
func New(kind, path string) (domain.Storage, error) {
	switch kind {
	case "memory", "mem":
		return NewInMemoryStore(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file store")
		}
		return NewFileStore(path)
	case "sqlite":
		if path == "" {
			return nil, fmt.Errorf("database path required for sqlite store")
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
