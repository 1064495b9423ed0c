/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recdump",
	Short: "recdump - inspect length-prefixed record files",
	Long: `recdump walks CRC-checked, length-prefixed record files written in
the once-io record format and prints or extracts their contents.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global start offset flag; records before it are skipped.
	rootCmd.PersistentFlags().Int64P("offset", "s", 0, "Byte offset to start walking from")
}
