package cmd

import (
	"DistroFM/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the DistroFM HTTP server",
	Long:  `Start the DistroFM HTTP server, serving the distribution dashboard API.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
