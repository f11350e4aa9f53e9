package main

import (
	"os"

	"composectl/cmd/composectl/cli"
)

var version = "dev"

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		cli.NewPrinter(os.Stderr, cli.DefaultTheme).Error(err.Error())
		os.Exit(1)
	}
}
