package main

import (
	"fmt"

	"github.com/go-kyugo/usersvc/user"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Store the default guest user and print the total user count",
	Args:  cobra.NoArgs,
	RunE:  runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	service := user.NewService()
	service.Add(user.Default())

	fmt.Fprintf(cmd.OutOrStdout(), "Total users: %d\n", service.Count())
	return nil
}
