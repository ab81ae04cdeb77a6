package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "vehicle-service",
	Short:         "Vehicle service: serves a static vehicle list over HTTP",
	RunE:          runAPI, // по умолчанию — запуск API
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute запускает корневую команду (Cobra CLI)
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addServeFlags(rootCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
