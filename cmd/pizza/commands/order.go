package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pizzaorder/internal/domain"
)

// order --name N --size S|M|L [--topping ID]...: one-shot submission.
func orderCmd() *cobra.Command {
	var (
		name     string
		size     string
		toppings []string
	)
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Validate and submit one order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := appCtx.NewForm()
			f.SetFullName(name)
			f.SetSize(domain.Size(strings.ToUpper(strings.TrimSpace(size))))
			for _, t := range toppings {
				f.SetTopping(resolveTopping(appCtx.Catalog, t), true)
			}

			outcome, err := f.Submit(cmd.Context(), appCtx.Submitter)
			var invalid *domain.FieldValidationError
			switch {
			case errors.As(err, &invalid):
				for _, field := range domain.Fields() {
					if msg, ok := invalid.Fields[field]; ok {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
					}
				}
				return errors.New("order not submitted")
			case err != nil:
				logger().Debug("order failed", zap.Error(err))
				fmt.Fprintln(cmd.ErrOrStderr(), outcome.Failure)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Success)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "full name (3 to 20 characters)")
	cmd.Flags().StringVarP(&size, "size", "s", "", "pizza size: S, M or L")
	cmd.Flags().StringArrayVarP(&toppings, "topping", "t", nil, "topping id or name; repeatable")
	return cmd
}

// resolveTopping maps a catalog name to its id. Anything else is passed
// through as an id.
func resolveTopping(catalog domain.ToppingCatalog, v string) string {
	v = strings.TrimSpace(v)
	if _, ok := catalog.Lookup(v); ok {
		return v
	}
	for _, t := range catalog {
		if strings.EqualFold(t.Text, v) {
			return t.ID
		}
	}
	return v
}
