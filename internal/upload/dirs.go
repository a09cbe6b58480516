package upload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ProvisioningError reports a category directory that could not be created.
// It is fatal to startup.
type ProvisioningError struct {
	Category Category
	Path     string
	Err      error
}

func (e *ProvisioningError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("provision public directory %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("provision %s directory %q: %v", e.Category, e.Path, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// EnsureDirectories creates every category directory that does not exist yet
// and returns the ones this call created. Calling it again, or concurrently, is
// safe: each directory is reported by exactly one caller.
func (p *Policy) EnsureDirectories(log *zap.SugaredLogger) ([]string, error) {
	if err := os.MkdirAll(p.publicDir, 0o755); err != nil {
		return nil, &ProvisioningError{Path: p.publicDir, Err: err}
	}

	var created []string
	for _, c := range categoryOrder {
		dir, err := p.FullPath(p.categoryPaths[c])
		if err != nil {
			return created, &ProvisioningError{Category: c, Path: p.categoryPaths[c], Err: err}
		}

		made, err := mkdirChain(p.publicDir, dir)
		if err != nil {
			return created, &ProvisioningError{Category: c, Path: dir, Err: err}
		}
		if !made {
			continue
		}
		created = append(created, dir)
		if log != nil {
			log.Infow("created image directory", "category", c, "path", dir)
		}
	}

	return created, nil
}

// mkdirChain creates dir and any missing parents below root one segment at a
// time. It reports whether this call created dir itself; a segment that
// already exists (or was created concurrently) is not an error.
func mkdirChain(root, dir string) (bool, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false, err
	}

	cur := root
	made := false
	for _, seg := range strings.Split(rel, string(filepath.Separator)) {
		if seg == "" || seg == "." {
			continue
		}
		cur = filepath.Join(cur, seg)

		err := os.Mkdir(cur, 0o755)
		switch {
		case err == nil:
			made = cur == dir
		case errors.Is(err, fs.ErrExist):
			info, statErr := os.Stat(cur)
			if statErr != nil {
				return false, statErr
			}
			if !info.IsDir() {
				return false, errors.New("exists and is not a directory")
			}
			made = false
		default:
			return false, err
		}
	}
	return made, nil
}
