package main

import (
	"fmt"
	"os"

	"github.com/go-kyugo/usersvc/config"
	"github.com/go-kyugo/usersvc/logger"
	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "usersvc",
	Short:         "In-memory user store sample",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.json", "path to the JSON config file")

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(findCmd)
}

// setup loads the config file when one exists and configures the package
// logger from its debug flag. Log output goes to stderr; stdout is reserved
// for command output.
func setup() error {
	if err := config.LoadFile(flagConfig); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	lvl := logger.LevelInfo
	if config.Current.App.Debug {
		lvl = logger.LevelDebug
	}
	logger.SetStd(logger.NewConsole(os.Stderr, lvl, true))
	return nil
}
