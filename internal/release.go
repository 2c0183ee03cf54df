package internal

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Release file names, relative to the repository root.
const (
	VersionFile   = "VERSION"
	ChangelogFile = "CHANGELOG.md"
)

const changelogSeed = `# Changelog

All notable changes to the AnnData DuckDB Extension will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.0.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

## [Unreleased]

## [%s] - %s

### Added
- Initial release

`

const changelogSection = `## [Unreleased]

## [%s] - %s

### Added
-

### Changed
-

### Fixed
-
`

// ReadVersion reads the current version from the VERSION file in dir.
func ReadVersion(dir string) (*semver.Version, error) {
	raw, err := os.ReadFile(filepath.Join(dir, VersionFile))
	if err != nil {
		return nil, err
	}
	v, err := semver.StrictNewVersion(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("invalid version in %s: %w", VersionFile, err)
	}
	return v, nil
}

// WriteVersion replaces the VERSION file in dir.
func WriteVersion(dir string, v *semver.Version) error {
	return os.WriteFile(filepath.Join(dir, VersionFile), []byte(v.String()+"\n"), 0o644)
}

// BumpVersion returns the next version for a bump kind of "major", "minor"
// or "patch".
func BumpVersion(current *semver.Version, kind string) (*semver.Version, error) {
	switch kind {
	case "major":
		next := current.IncMajor()
		return &next, nil
	case "minor":
		next := current.IncMinor()
		return &next, nil
	case "patch":
		next := current.IncPatch()
		return &next, nil
	default:
		return nil, fmt.Errorf("invalid bump type: %s", kind)
	}
}

// UpdateChangelog inserts a dated section for the new version directly below
// the [Unreleased] heading of CHANGELOG.md, creating the file if it does not
// exist. A section that is already present is left alone.
func UpdateChangelog(dir string, v *semver.Version, date time.Time) error {
	path := filepath.Join(dir, ChangelogFile)
	day := date.Format("2006-01-02")

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		seed := fmt.Sprintf(changelogSeed, v, day)
		return os.WriteFile(path, []byte(seed), 0o644)
	}
	if err != nil {
		return err
	}

	content := string(raw)
	heading := fmt.Sprintf("## [%s]", v)
	if strings.Contains(content, heading) {
		LogInfo("version %s already in %s", v, ChangelogFile)
		return nil
	}

	const unreleased = "## [Unreleased]"
	if !strings.Contains(content, unreleased) {
		return fmt.Errorf("no [Unreleased] section in %s", ChangelogFile)
	}

	section := strings.TrimRight(fmt.Sprintf(changelogSection, v, day), "\n")
	content = strings.Replace(content, unreleased, section, 1)
	return os.WriteFile(path, []byte(content), 0o644)
}

// CreateTag creates an annotated git tag v<version> in dir and optionally
// pushes it to origin. An existing tag is reported, not overwritten.
func CreateTag(dir string, v *semver.Version, push bool) error {
	tag := "v" + v.String()

	out, err := gitOutput(dir, "tag", "-l", tag)
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) != "" {
		LogInfo("tag %s already exists", tag)
		return nil
	}

	if _, err := gitOutput(dir, "tag", "-a", tag, "-m", "Release version "+v.String()); err != nil {
		return err
	}
	LogInfo("created tag %s", tag)

	if push {
		if _, err := gitOutput(dir, "push", "origin", tag); err != nil {
			return err
		}
		LogInfo("pushed tag %s to origin", tag)
	}
	return nil
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
