// Package main is the entry point for the fitdash CLI, a terminal client for
// the fitness dashboard API.
package main

import (
	"fitdash/cli/cmd"
)

func main() {
	cmd.Execute()
}
