package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Version of the ras tools. It is overridden at link time with
// -ldflags "-X main.Version=...".
var Version = "0.3.0"

// toolVersion parses Version, so a malformed release string is caught by the
// tests instead of being shipped.
func toolVersion() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid tool version %q: %w", Version, err)
	}
	return v, nil
}

func printVersion(w io.Writer) error {
	v, err := toolVersion()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ras v%s\n", v)
	if v.Prerelease() != "" {
		fmt.Fprintf(w, "Pre-release: %s\n", v.Prerelease())
	}
	fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
