package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/version"
)

// versionCmd prints detailed version and build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.FullString())
		fmt.Printf("  commit:     %s\n", version.GitCommit)
		fmt.Printf("  built:      %s\n", version.BuildDate)
		fmt.Printf("  go version: %s\n", version.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
