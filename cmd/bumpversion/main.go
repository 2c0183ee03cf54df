// bumpversion increments the project version and records the release.
//
// Usage:
//
//	bumpversion patch            0.1.0 -> 0.1.1
//	bumpversion minor            0.1.0 -> 0.2.0
//	bumpversion major            0.1.0 -> 1.0.0
//	bumpversion set 0.3.0        set an explicit version
//	bumpversion current          print the current version
//
// The new version is written to VERSION, a dated section is inserted into
// CHANGELOG.md, and with --tag an annotated git tag v<version> is created
// (--push pushes it to origin).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	flag "github.com/spf13/pflag"

	"github.com/honicky/anndata-duckdb-extension/internal"
)

func main() {
	tag := flag.Bool("tag", false, "create an annotated git tag for the new version")
	push := flag.Bool("push", false, "push the created tag to origin (implies --tag)")
	repoDir := flag.StringP("chdir", "C", ".", "repository root containing VERSION and CHANGELOG.md")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	command := flag.Arg(0)

	current, err := internal.ReadVersion(*repoDir)
	if err != nil {
		fatalf("read version: %v", err)
	}
	fmt.Printf("Current version: %s\n", current)

	var next *semver.Version
	switch command {
	case "current":
		return
	case "set":
		if flag.NArg() < 2 {
			fatalf("set requires a version argument")
		}
		next, err = semver.StrictNewVersion(flag.Arg(1))
		if err != nil {
			fatalf("invalid version %q: %v", flag.Arg(1), err)
		}
	case "major", "minor", "patch":
		next, err = internal.BumpVersion(current, command)
		if err != nil {
			fatalf("%v", err)
		}
	default:
		fatalf("invalid command: %s", command)
	}

	fmt.Printf("New version: %s\n", next)

	if err := internal.WriteVersion(*repoDir, next); err != nil {
		fatalf("write VERSION: %v", err)
	}
	if err := internal.UpdateChangelog(*repoDir, next, time.Now()); err != nil {
		fatalf("update changelog: %v", err)
	}

	if *tag || *push {
		if err := internal.CreateTag(*repoDir, next, *push); err != nil {
			fatalf("tag: %v", err)
		}
	} else {
		fmt.Println("\nTo complete the version bump:")
		fmt.Println("  git add VERSION CHANGELOG.md")
		fmt.Printf("  git commit -m \"chore: bump version to %s\"\n", next)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
