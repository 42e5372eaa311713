package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cart contents and totals",
	RunE: func(_ *cobra.Command, _ []string) error {
		entries := shop.Cart().Entries()
		if len(entries) == 0 {
			fmt.Println("cart is empty")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRICE\tQTY\tSUBTOTAL")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%.2f\n",
				e.ID, e.Title, e.Price, e.Quantity, e.Price*float64(e.Quantity))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d items, total %.2f\n", shop.Cart().TotalItems(), shop.Cart().TotalPrice())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product ID %q", args[0])
		}
		p, err := lookupProduct(cmd.Context(), id)
		if err != nil {
			return err
		}

		before := shop.Cart().TotalItems()
		shop.Cart().Add(p)
		if shop.Cart().TotalItems() == before {
			fmt.Printf("%s is already at its stock limit (%d)\n", p.Title, p.Stock)
			return nil
		}
		fmt.Printf("added %s to cart\n", p.Title)
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set the quantity of a cart entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product ID %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}

		shop.Cart().UpdateQuantity(id, qty)

		for _, e := range shop.Cart().Entries() {
			if e.ID == id {
				fmt.Printf("%s: quantity %d\n", e.Title, e.Quantity)
				return nil
			}
		}
		fmt.Printf("product %d is not in the cart\n", id)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product ID %q", args[0])
		}
		shop.Cart().Remove(id)
		fmt.Printf("removed product %d from cart\n", id)
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(_ *cobra.Command, _ []string) error {
		shop.Cart().Clear()
		fmt.Println("cart cleared")
		return nil
	},
}

func init() {
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
