//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data without forcing a metadata write.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
