package utils

import (
	"crypto/md5"
	"fmt"
	"time"
)

// GenerateETag derives a weak validator from an entity id and its last
// update time, matching the If-None-Match handling in the list/get routes.
func GenerateETag(id string, updatedAt time.Time) string {
	sum := md5.Sum([]byte(id + updatedAt.UTC().Format(time.RFC3339Nano)))
	return fmt.Sprintf("%q", fmt.Sprintf("%x", sum))
}
