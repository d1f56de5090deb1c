package sqlite

import "fmt"

// Scanner interface defines the scanning behavior of sql.Row
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanEntry scans a single key-value entry from a database row
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	var updatedAt string

	if err := scanner.Scan(&entry.Key, &entry.Value, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at for key %q: %w", entry.Key, err)
	}
	entry.UpdatedAt = parsed

	return entry, nil
}
