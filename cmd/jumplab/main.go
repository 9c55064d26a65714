// main is the entry point for the jumplab CLI.
package main

import (
	"github.com/pcorbett/jumplab/cmd"
	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/internal/runstore"
)

func main() {
	cmd.SetRunManager(runstore.Manager)

	err := cmd.Execute()

	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Failed to stop profiling", profErr)
	}
	runstore.CloseStore()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
