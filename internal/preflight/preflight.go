// Package preflight checks that a run can plausibly succeed before any file
// moves: the source must be a readable directory and the destination side
// must be writable. Failures here map to the fatal precondition exit path.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Result describes the outcome of a single environment check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckSource verifies the source exists, is a directory, and can be listed.
func CheckSource(path string) Result {
	const name = "Source"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckDestination verifies the destination, or its nearest existing
// ancestor when it has not been created yet, allows writes. Bucket creation
// fails fast at run start instead of once per file when this is wrong.
func CheckDestination(path string) Result {
	const name = "Destination"

	probe := path
	for {
		info, err := os.Stat(probe)
		if err == nil {
			if !info.IsDir() {
				return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s is not a directory)", path, probe)}
			}
			if err := unix.Access(probe, unix.W_OK|unix.X_OK); err != nil {
				return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s not writable: %v)", path, probe, err)}
			}
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
		}
		if !os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat %s: %v)", path, probe, err)}
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing ancestor)", path)}
		}
		probe = parent
	}
}

// Run evaluates every check for a source and destination pair.
func Run(source, destination string) []Result {
	return []Result{
		CheckSource(source),
		CheckDestination(destination),
	}
}

// Failed reports whether any result in the set did not pass.
func Failed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return true
		}
	}
	return false
}
