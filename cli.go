//go:build cli
// +build cli

package main

import (
	_ "admybrand.GO/custom"

	"admybrand.GO/cmd"
	"admybrand.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
