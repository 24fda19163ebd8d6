package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

/**************************************************************************************************
** FormatTimestamp renders a timestamp in the compact filename form (YYYYMMDDHHmmSS).
**
** @param t - Timestamp to render
** @return string - Compact second-precision representation
**************************************************************************************************/
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

/**************************************************************************************************
** NormalizedExt returns the lowercased extension of a path, including the leading dot.
** Renamed files always carry a lowercase extension regardless of the source casing.
**
** @param path - Path to extract the extension from
** @return string - Lowercased extension, or "" when the path has none
**************************************************************************************************/
func NormalizedExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsImageFile reports whether a path has one of the recognized image extensions.
func IsImageFile(path string) bool {
	return ImageExtensions[NormalizedExt(path)]
}

/**************************************************************************************************
** UniqueTarget resolves filename collisions deterministically. The first claimant of a target
** keeps it unchanged; later claimants get a numeric suffix before the extension (-1, -2, ...)
** in claim order. The taken set is owned by the caller and spans one plan, so every target
** returned within that plan is pairwise distinct.
**
** @param target - Desired destination path
** @param taken - Set of destination paths already claimed in this plan
** @return string - The claimed, collision-free destination path
**************************************************************************************************/
func UniqueTarget(target string, taken map[string]bool) string {
	if !taken[target] {
		taken[target] = true
		return target
	}
	ext := filepath.Ext(target)
	base := strings.TrimSuffix(target, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", base, n, ext)
		if !taken[candidate] {
			taken[candidate] = true
			return candidate
		}
	}
}

/**************************************************************************************************
** CopyFile duplicates src at dst without ever overwriting an existing file: the destination is
** opened with O_EXCL so a pre-existing target fails cleanly instead of being clobbered. The
** source file mode and modification time are preserved, so copied captures keep their
** original timestamps on disk.
**
** @param src - File to copy
** @param dst - Destination path, must not exist
** @return error - Any error from stat, open, create, or copy
**************************************************************************************************/
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
