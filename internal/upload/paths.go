package upload

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned for relative paths that could escape the public root.
var ErrUnsafePath = errors.New("unsafe image path")

// FullPath joins the public directory with relativePath (e.g.
// "/images/class-groups/x.jpg"). Paths with ".." segments or NUL bytes are
// rejected rather than normalised. No existence check is made.
func (p *Policy) FullPath(relativePath string) (string, error) {
	if err := CheckPath(relativePath); err != nil {
		return "", err
	}

	cleaned := path.Clean("/" + strings.ReplaceAll(relativePath, `\`, "/"))
	return filepath.Join(p.publicDir, filepath.FromSlash(cleaned)), nil
}

// CheckPath returns ErrUnsafePath when relativePath has a NUL byte or a ".."
// segment (with "\" treated as a separator). Every storage backend applies it
// to keys before touching the store.
func CheckPath(relativePath string) error {
	if strings.ContainsRune(relativePath, 0) {
		return ErrUnsafePath
	}
	for _, seg := range strings.Split(strings.ReplaceAll(relativePath, `\`, "/"), "/") {
		if seg == ".." {
			return ErrUnsafePath
		}
	}
	return nil
}

// ImageURL turns a relative path into the URL clients should fetch. With the
// CDN enabled the base URL is prepended verbatim, otherwise relativePath is
// returned as is.
func (p *Policy) ImageURL(relativePath string) string {
	if p.cdn.Enabled && p.cdn.BaseURL != "" {
		return p.cdn.BaseURL + relativePath
	}
	return relativePath
}
