package cmd

import (
	"agrodirect/app"
	"agrodirect/config"
	"agrodirect/models"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	priceCategory string
	priceLocation string
)

var priceCmd = &cobra.Command{
	Use:   "price <product name>",
	Short: "Ask the AI advisor for a market price",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := models.Category(priceCategory)
		if !category.Valid() {
			return fmt.Errorf("unknown category %q", priceCategory)
		}

		cache := config.ConnectRedis(cmd.Context(), cfg, logger)
		if cache != nil {
			defer cache.Close()
		}
		pricing := app.NewPricing(cmd.Context(), cfg, cache, logger)

		rec := pricing.Recommend(cmd.Context(), models.PriceQuery{
			ProductName: strings.Join(args, " "),
			Category:    category,
			Location:    priceLocation,
		})
		out := cmd.OutOrStdout()
		if rec == nil {
			fmt.Fprintln(out, "No recommendation available")
			return nil
		}

		fmt.Fprintf(out, "Recommended: NGN %.0f (range %.0f - %.0f)\n", rec.RecommendedPrice, rec.MinPrice, rec.MaxPrice)
		fmt.Fprintln(out, rec.Reason)
		return nil
	},
}

func init() {
	priceCmd.Flags().StringVarP(&priceCategory, "category", "c", string(models.CategoryCrops), "product category")
	priceCmd.Flags().StringVarP(&priceLocation, "location", "l", "Lagos", "market location")
}
