package cmd

import (
	"agrodirect/app"
	"agrodirect/models"
	"agrodirect/services"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogFilter models.ProductFilter

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalog products matching a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, db, err := app.LoadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		products := services.NewCatalogService(catalog).ListProducts(catalogFilter)
		if len(products) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No products found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tLOCATION\tPRICE\tUNIT\tFARMER")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\tNGN %s\t%s\t%s\n",
				p.ID, p.Name, p.Category, p.Location, services.FormatNaira(p.Price), p.Unit, p.FarmerName)
		}
		return w.Flush()
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFilter.Search, "search", "s", "", "search name and description")
	catalogCmd.Flags().StringVarP(&catalogFilter.Category, "category", "c", models.FilterAll, "category filter")
	catalogCmd.Flags().StringVarP(&catalogFilter.Location, "location", "l", models.FilterAll, "location filter")
}
