package main

import (
	"fmt"
	"os"

	"github.com/tokenswap/tokenswap-deploy/internal/cli"
	"github.com/tokenswap/tokenswap-deploy/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
