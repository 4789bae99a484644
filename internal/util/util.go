// Package util has small helpers shared by the transfer pipeline: checksums
// for merged video assets and human-readable sizes and durations for logs.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// CalculateFileChecksum returns the hex SHA-256 of a file on disk. Used to
// fingerprint a merged video asset after a chunked upload completes.
func CalculateFileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open file for checksum")
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", errors.Wrap(err, "hash file contents")
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FormatBytes renders a byte count for log lines ("512 B", "25.0 MB").
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), units[exp])
}

// FormatDuration renders a duration for log lines ("45s", "5m10s", "1h30m").
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
