package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "seqpat",
	Short: "Mine frequent sequential patterns under gap, span, average, and median constraints",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "seqpat.yaml", "path to the run's configuration file")
	rootCmd.AddCommand(mineCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
