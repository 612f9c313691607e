package fileloader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/GoMudEngine/textkit/internal/applog"
	"github.com/pkg/errors"
)

// Copy copies src to dst, reporting success rather than an error.
func Copy(src, dst string) bool {
	if err := CopyFileContents(src, dst); err != nil {
		applog.Warn("Copy", "error", errors.Wrap(err, "copy "+src+" to "+dst))
		return false
	}
	return true
}

// Remove deletes a file or a whole directory tree. A missing path counts as failure.
func Remove(path string) bool {
	path = filepath.FromSlash(path)
	if _, err := os.Lstat(path); err != nil {
		applog.Warn("Remove", "path", path, "error", err)
		return false
	}
	if err := os.RemoveAll(path); err != nil {
		applog.Warn("Remove", "path", path, "error", errors.Wrap(err, "remove "+path))
		return false
	}
	return true
}

// Join joins path pieces with the OS separator, trimming separators from the edges of
// each piece. A leading separator on the first piece is kept.
func Join(parts ...string) string {
	sep := string(filepath.Separator)

	pieces := make([]string, 0, len(parts))
	for i, part := range parts {
		part = filepath.FromSlash(part)
		if i == 0 {
			part = strings.TrimRight(part, sep)
			if part == `` && strings.HasPrefix(parts[0], sep) {
				part = sep
			}
		} else {
			part = strings.Trim(part, sep)
		}
		if part == `` {
			continue
		}
		pieces = append(pieces, part)
	}

	if len(pieces) > 0 && pieces[0] == sep {
		return sep + strings.Join(pieces[1:], sep)
	}
	return strings.Join(pieces, sep)
}

// FilenameFromFile returns the absolute path of an open file when it can be resolved,
// otherwise the name it was opened with.
func FilenameFromFile(f *os.File) string {
	name := f.Name()
	if abs, err := filepath.Abs(name); err == nil {
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return name
}
