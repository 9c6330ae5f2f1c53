package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command group
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Browse the product catalog",
		Long:    "List products and inspect their statics and historical scenarios",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsNPVCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		search string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available products",
		Long:  "List product codes, optionally narrowed to a code or description prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			products, err := client.Products(cmd.Context(), search, limit)
			if err != nil {
				return err
			}

			return renderList("Product", products)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "code or description prefix")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum products to return (0 fetches everything)")

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CODE",
		Short: "Get product details",
		Long:  "Display the statics and historical scenarios of one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			product, err := client.Product(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderValue(product)
		},
	}
}

func newProductsNPVCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "npv CODE PRICE",
		Short: "Price an Aussie bond futures",
		Long:  "Compute the net present value of an Aussie bond futures at the given price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			npv, err := client.AussieBondFuturesNPV(cmd.Context(), args[0], price)
			if err != nil {
				return err
			}

			return renderValue(npv)
		},
	}
}
