// Package npm provides the package-metadata collaborator for the changelog
// CLI: reading the current version from package.json and delegating version
// bumps to the npm CLI (which updates package.json and creates the git tag).
package npm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrNoPackage is returned when the working directory has no package.json.
type ErrNoPackage struct {
	Dir string
}

func (e *ErrNoPackage) Error() string {
	return fmt.Sprintf("no package.json in %s", e.Dir)
}

// CurrentVersion reads the "version" field of package.json in dir.
func CurrentVersion(dir string) (string, error) {
	path := filepath.Join(dir, "package.json")
	if _, err := os.Stat(path); err != nil {
		return "", &ErrNoPackage{Dir: dir}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return "", fmt.Errorf("parsing package.json: %w", err)
	}

	version := k.String("version")
	if version == "" {
		return "", fmt.Errorf("package.json in %s has no version field", dir)
	}
	return version, nil
}

// SetVersion runs `npm version <version>` in dir, which rewrites
// package.json and creates a version commit and tag. The caller commits the
// changelog file first so the npm commit captures a consistent tree.
func SetVersion(ctx context.Context, dir, version string) error {
	cmd := exec.CommandContext(ctx, "npm", "version", version)
	cmd.Dir = dir

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("npm version %s: %w\n%s", version, err, out)
	}
	return nil
}
