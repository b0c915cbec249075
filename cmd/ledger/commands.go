package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tiendita/cart-ledger/internal/cart"
	cartdto "github.com/tiendita/cart-ledger/internal/cart/dto"
	"github.com/tiendita/cart-ledger/internal/catalog"
	"github.com/tiendita/cart-ledger/internal/checkout"
	checkoutdto "github.com/tiendita/cart-ledger/internal/checkout/dto"
	"github.com/tiendita/cart-ledger/internal/currency"
	"github.com/tiendita/cart-ledger/internal/model"
	"github.com/tiendita/cart-ledger/internal/storage"
)

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("product id must be an integer, got %q", arg)
	}
	return id, nil
}

func newCatalogCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the product catalog with current stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := (*a).sessionContext(cmd.Context())
			products, err := (*a).catalog.List(ctx)
			if err != nil {
				return err
			}
			rate := (*a).displayRate(ctx)
			for _, p := range products {
				price := currency.Format(p.UnitPrice, rate, (*a).cfg.Currency.DisplayCode)
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-35s %12s  stock: %d\n",
					p.ID, p.Name, price, p.Stock)
			}
			return nil
		},
	}
}

func newAddCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			ctx := (*a).sessionContext(cmd.Context())
			res, err := (*a).cart.AddItem(ctx, id)
			switch {
			case errors.Is(err, catalog.ErrNotFound):
				return fmt.Errorf("no product with id %d", id)
			case errors.Is(err, cart.ErrOutOfStock):
				fmt.Fprintf(cmd.OutOrStdout(), "Product %d is out of stock.\n", id)
				return nil
			case err != nil:
				return err
			}
			printMutation(cmd, *a, res)
			return nil
		},
	}
}

func newRemoveCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product line from the cart, restoring its stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			ctx := (*a).sessionContext(cmd.Context())
			res, err := (*a).cart.RemoveItem(ctx, id)
			if err != nil {
				return err
			}
			printMutation(cmd, *a, res)
			return nil
		},
	}
}

func newClearCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart, restoring all reserved stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := (*a).sessionContext(cmd.Context())
			res, err := (*a).cart.Clear(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared, stock restored.")
			if !res.Persisted {
				fmt.Fprintln(cmd.OutOrStdout(), "(warning: changes not yet saved to storage)")
			}
			return nil
		},
	}
}

func newTotalCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show the cart lines and total",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := (*a).sessionContext(cmd.Context())
			lines, err := (*a).cart.Items(ctx)
			if err != nil {
				return err
			}
			total, err := (*a).cart.Total(ctx)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The cart is empty.")
			}
			rate := (*a).displayRate(ctx)
			code := (*a).cfg.Currency.DisplayCode
			for _, l := range lines {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d x %-35s %12s\n",
					l.Quantity, l.Product.Name, currency.Format(l.Subtotal(), rate, code))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", currency.Format(total, rate, code))
			return nil
		},
	}
}

func newCheckoutCmd(a **app) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Commit the cart to a purchase record",
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := model.ParsePaymentMethod(method)
			if err != nil {
				return err
			}
			ctx := (*a).sessionContext(cmd.Context())
			res, err := (*a).checkout.Checkout(ctx, &checkoutdto.CheckoutInput{PaymentMethod: pm})
			switch {
			case errors.Is(err, checkout.ErrEmptyCart):
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to check out: the cart is empty.")
				return nil
			case errors.Is(err, checkout.ErrUnauthenticated):
				return fmt.Errorf("no active session: set LEDGER_USER to check out")
			case err != nil:
				return err
			}
			rate := (*a).displayRate(ctx)
			code := (*a).cfg.Currency.DisplayCode
			fmt.Fprintf(cmd.OutOrStdout(), "Purchase %s committed: %s (%s)\n",
				res.Record.ID, currency.Format(res.Record.Total, rate, code), res.Record.PaymentMethod)
			if !res.Persisted {
				fmt.Fprintln(cmd.OutOrStdout(), "(warning: changes not yet saved to storage)")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "card", "payment method: card | cash | thirdparty")
	return cmd
}

func newHistoryCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List archived purchases in commit order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := (*a).sessionContext(cmd.Context())
			records, err := (*a).history.List(ctx)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No purchases yet.")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-10s  USD %.2f  (%d lines)\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID, r.PaymentMethod, r.Total, len(r.Lines))
			}
			return nil
		},
	}
}

func newResetCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all persisted state (catalog, cart, history)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := (*a).sessionContext(cmd.Context())
			for _, key := range []string{storage.KeyProducts, storage.KeyCart, storage.KeyHistory} {
				if err := (*a).store.Delete(ctx, key); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ledger state reset; the catalog reseeds on next run.")
			return nil
		},
	}
}

func printMutation(cmd *cobra.Command, a *app, res *cartdto.MutationResult) {
	out := cmd.OutOrStdout()
	if res.Product != nil {
		fmt.Fprintf(out, "%s: stock now %d\n", res.Product.Name, res.Product.Stock)
	}
	rate := a.displayRate(cmd.Context())
	code := a.cfg.Currency.DisplayCode
	fmt.Fprintf(out, "Cart: %d line(s), total %s\n",
		len(res.Lines), currency.Format(res.Total, rate, code))
	if !res.Persisted {
		fmt.Fprintln(out, "(warning: changes not yet saved to storage)")
	}
}
