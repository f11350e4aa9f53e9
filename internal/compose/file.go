package compose

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"composectl/internal/errors"
)

// unquotable are the characters a path may not contain to be placed
// verbatim between double quotes on a single command line.
const unquotable = "\"\r\n"

// File is a compose file relative to the project folder.
type File struct {
	Label string // shown in the chooser
	Dir   string // relative directory, "." for the folder root
	Path  string // passed to -f
}

// NewFile derives a File from an absolute location by stripping the folder
// prefix. Locations outside the folder keep their absolute path.
func NewFile(folder, location string) File {
	rel := location
	if r, err := filepath.Rel(folder, location); err == nil && r != ".." && !strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		rel = r
	}
	rel = filepath.ToSlash(rel)
	return File{
		Label: rel,
		Dir:   path.Dir(rel),
		Path:  rel,
	}
}

// Location turns a user supplied reference (absolute path, path relative
// to folder, or file:// URI) into an absolute location.
func Location(folder, ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "file://") {
		if u, err := url.Parse(ref); err == nil {
			p := u.Path
			// file:///C:/x parses to /C:/x
			if runtime.GOOS == "windows" && len(p) > 2 && p[0] == '/' && p[2] == ':' {
				p = p[1:]
			}
			ref = filepath.FromSlash(p)
		}
	}
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(folder, filepath.FromSlash(ref))
}

// FileFromRef is Location followed by NewFile.
func FileFromRef(folder, ref string) File {
	return NewFile(folder, Location(folder, ref))
}

// CheckQuotable fails with an InvalidPath error when p cannot be written
// as "p" on one command line.
func CheckQuotable(p string) error {
	if strings.ContainsAny(p, unquotable) {
		return errors.NewFileError(fmt.Sprintf("path contains a quote or line break: %q", p), p, errors.InvalidPath, nil)
	}
	return nil
}
