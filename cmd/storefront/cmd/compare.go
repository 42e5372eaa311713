package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare up to two products side by side",
}

var compareShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the comparison",
	RunE: func(_ *cobra.Command, _ []string) error {
		items := shop.Compare().Products()
		if len(items) == 0 {
			fmt.Println("nothing to compare")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprint(w, "\t")
		for _, p := range items {
			fmt.Fprintf(w, "%s\t", p.Title)
		}
		fmt.Fprintln(w)

		rows := []struct {
			label string
			value func(i int) string
		}{
			{"category", func(i int) string { return items[i].Category }},
			{"price", func(i int) string { return fmt.Sprintf("%.2f", items[i].Price) }},
			{"rating", func(i int) string { return fmt.Sprintf("%.1f", items[i].Rating) }},
			{"stock", func(i int) string { return strconv.Itoa(items[i].Stock) }},
		}
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t", row.label)
			for i := range items {
				fmt.Fprintf(w, "%s\t", row.value(i))
			}
			fmt.Fprintln(w)
		}
		return w.Flush()
	},
}

var compareAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the comparison",
	Long: `Add a product to the comparison. The comparison holds two products;
adding a third replaces the older of the pair.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product ID %q", args[0])
		}
		p, err := lookupProduct(cmd.Context(), id)
		if err != nil {
			return err
		}
		shop.Compare().Add(p)
		fmt.Printf("comparing %s\n", p.Title)
		return nil
	},
}

var compareRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the comparison",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product ID %q", args[0])
		}
		shop.Compare().Remove(id)
		fmt.Printf("removed product %d from comparison\n", id)
		return nil
	},
}

var compareClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the comparison",
	RunE: func(_ *cobra.Command, _ []string) error {
		shop.Compare().Clear()
		fmt.Println("comparison cleared")
		return nil
	},
}

func init() {
	compareCmd.AddCommand(compareShowCmd)
	compareCmd.AddCommand(compareAddCmd)
	compareCmd.AddCommand(compareRemoveCmd)
	compareCmd.AddCommand(compareClearCmd)
	rootCmd.AddCommand(compareCmd)
}
