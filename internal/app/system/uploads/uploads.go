// Package uploads holds the constraints and naming scheme for image uploads.
//
// Validation happens before any storage call: only image content types are
// accepted and files are capped at 10 MiB. Stored objects are named
// portfolio/<unix-ms>-<sanitized-original-name>, which keeps names
// collision-resistant without a lookup and keeps the original filename
// recognizable in the bucket.
package uploads

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload size cap in bytes (10 MiB).
const MaxFileSize = 10 << 20

// PathPrefix is the storage prefix for uploaded portfolio assets.
const PathPrefix = "portfolio"

// Validation errors, surfaced inline next to the affected control.
var (
	ErrNotAnImage = errors.New("file must be an image")
	ErrTooLarge   = errors.New("file exceeds the 10 MiB limit")
	ErrNoFile     = errors.New("no file provided")
)

// Validate rejects a candidate upload before any network or storage call.
func Validate(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with "_".
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// StoragePath builds the storage path for an uploaded file from the original
// filename and the upload time. A filename that sanitizes to nothing usable
// gets a generated name instead.
func StoragePath(originalName string, now time.Time) string {
	name := SanitizeFilename(originalName)
	if strings.Trim(name, "._-") == "" {
		name = uuid.NewString()
	}
	return fmt.Sprintf("%s/%d-%s", PathPrefix, now.UnixMilli(), name)
}
