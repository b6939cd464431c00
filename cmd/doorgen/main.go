// Command doorgen writes door models for a list of door edges or a
// react-planner scene to an SDF file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
