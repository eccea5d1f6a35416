package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a timestamp in SQLite's "2006-01-02 15:04:05" format,
// plain "2006-01-02", or RFC3339. The trade-logger application has used
// all three formats across versions.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", str)
}
