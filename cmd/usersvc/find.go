package main

import (
	"fmt"
	"strconv"

	"github.com/go-kyugo/usersvc/user"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [id]",
	Short: "Seed the default users and look one up by id (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	id := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		id = n
	}

	manager := user.NewManager()
	manager.Seed()

	// An absent user prints nothing; absence is not an error.
	if u, ok := manager.Get(id); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Found user: %s\n", u.Name)
	}
	return nil
}
