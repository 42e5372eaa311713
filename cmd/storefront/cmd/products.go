package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/storekit/storefront/pkg/products"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse and filter the product catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		q := queryFromFlags(cmd)

		page, err := shop.Catalog().Filter(cmd.Context(), q)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tRATING\tSTOCK")
		for _, p := range page.Data {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.1f\t%d\n",
				p.ID, p.Title, p.Category, p.Price, p.Rating, p.Stock)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\npage %d/%d, %d products total\n", page.Page, page.TotalPages, page.Total)
		if encoded := q.Values().Encode(); encoded != "" {
			// The same parameters as a shareable query string.
			fmt.Printf("query: ?%s\n", encoded)
		}
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product with its reviews",
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

		fmt.Printf("%s  (#%d)\n", p.Title, p.ID)
		fmt.Printf("  %s\n", p.Description)
		fmt.Printf("  category: %s  price: %.2f  rating: %.1f  stock: %d\n",
			p.Category, p.Price, p.Rating, p.Stock)

		reviews, err := shop.Catalog().Reviews(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(reviews) == 0 {
			fmt.Println("\nno reviews yet")
			return nil
		}
		fmt.Printf("\nreviews (%d):\n", len(reviews))
		for _, r := range reviews {
			fmt.Printf("  %.0f/5  %s — %s (%s)\n",
				r.Rating, r.Comment, r.Author, r.Date.Format("2006-01-02"))
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		categories, err := shop.Catalog().Categories(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Println(c)
		}
		return nil
	},
}

// queryFromFlags builds the filter query from the products command flags.
func queryFromFlags(cmd *cobra.Command) products.Query {
	flags := cmd.Flags()
	search, _ := flags.GetString("search")
	category, _ := flags.GetString("category")
	minPrice, _ := flags.GetFloat64("min-price")
	maxPrice, _ := flags.GetFloat64("max-price")
	sortBy, _ := flags.GetString("sort")
	order, _ := flags.GetString("order")
	page, _ := flags.GetInt("page")
	limit, _ := flags.GetInt("limit")

	return products.Query{
		Search:   search,
		Category: category,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		SortBy:   products.SortField(sortBy),
		Order:    products.SortOrder(order),
		Page:     page,
		PageSize: limit,
	}.Normalize()
}

func init() {
	flags := productsCmd.Flags()
	flags.String("search", "", "match against title and description")
	flags.String("category", "", "filter by exact category")
	flags.Float64("min-price", 0, "minimum price, inclusive")
	flags.Float64("max-price", 0, "maximum price, inclusive (0 = unbounded)")
	flags.String("sort", "title", "sort field: title, price, rating")
	flags.String("order", "asc", "sort order: asc, desc")
	flags.Int("page", 1, "1-based result page")
	flags.Int("limit", 0, "products per page")

	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(categoriesCmd)
}
