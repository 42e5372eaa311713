package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage the wishlist (memory-only, resets each run)",
}

var wishlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List wishlisted products",
	RunE: func(_ *cobra.Command, _ []string) error {
		items := shop.Wishlist().Products()
		if len(items) == 0 {
			fmt.Println("wishlist is empty")
			return nil
		}
		for _, p := range items {
			fmt.Printf("%d  %s  %.2f\n", p.ID, p.Title, p.Price)
		}
		return nil
	},
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Save a product to the wishlist",
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
		shop.Wishlist().Add(p)
		fmt.Printf("saved %s to wishlist\n", p.Title)
		return nil
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product ID %q", args[0])
		}
		shop.Wishlist().Remove(id)
		fmt.Printf("removed product %d from wishlist\n", id)
		return nil
	},
}

func init() {
	wishlistCmd.AddCommand(wishlistShowCmd)
	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)
	rootCmd.AddCommand(wishlistCmd)
}
