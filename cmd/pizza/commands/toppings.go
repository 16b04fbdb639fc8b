package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func toppingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toppings",
		Short: "List the topping catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range appCtx.Catalog {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.ID, t.Text)
			}
			return nil
		},
	}
}
