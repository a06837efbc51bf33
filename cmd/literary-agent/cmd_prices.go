// cmd/literary-agent/cmd_prices.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw/literary-agent/internal/service"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Competitor price monitoring",
}

var pricesCheckFlags struct {
	category string
}

var pricesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch competitor listings and save a price report",
	RunE:  runPricesCheck,
}

var pricesTrackCmd = &cobra.Command{
	Use:   "track <asin>",
	Short: "Fetch one listing and record its price point",
	Args:  cobra.ExactArgs(1),
	RunE:  runPricesTrack,
}

var pricesHistoryCmd = &cobra.Command{
	Use:   "history <asin>",
	Short: "Show recorded price points and any recent change alert",
	Args:  cobra.ExactArgs(1),
	RunE:  runPricesHistory,
}

func init() {
	pricesCheckCmd.Flags().StringVar(&pricesCheckFlags.category, "category", "", "Check a single watch category (empty = all)")

	pricesCmd.AddCommand(pricesCheckCmd)
	pricesCmd.AddCommand(pricesTrackCmd)
	pricesCmd.AddCommand(pricesHistoryCmd)
}

func runPricesCheck(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	competitors, err := tk.competitors()
	if err != nil {
		return err
	}
	if pricesCheckFlags.category != "" {
		asins, ok := competitors[pricesCheckFlags.category]
		if !ok {
			return fmt.Errorf("unknown watch category %q", pricesCheckFlags.category)
		}
		competitors = map[string][]string{pricesCheckFlags.category: asins}
	}

	report, path, err := tk.pricing.CheckCompetitors(cmd.Context(), competitors)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, service.FormatPriceSummary(report))
	fmt.Fprintf(out, "\n📄 Full report saved to: %s\n", path)
	return nil
}

func runPricesTrack(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	asin := args[0]
	listing, history, err := tk.pricing.TrackPrice(cmd.Context(), asin)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📖 %s\n", listing.Title)
	fmt.Fprintf(out, "💰 Price: %s\n", listing.Price)
	fmt.Fprintf(out, "Recorded points: %d\n", len(history))
	return nil
}

func runPricesHistory(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	asin := args[0]
	history, err := tk.pricing.PriceHistory(asin)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(history) == 0 {
		fmt.Fprintf(out, "No recorded prices for %s yet. Run 'literary-agent prices track %s' first.\n", asin, asin)
		return nil
	}

	for _, p := range history {
		fmt.Fprintf(out, "%s  %s\n", p.Date.Format("2006-01-02"), p.Price)
	}

	if len(history) >= 2 {
		alert, err := tk.pricing.DetectPriceChange(asin)
		if err != nil {
			return err
		}
		if alert != nil {
			fmt.Fprintf(out, "\n⚠️ Price moved %.1f%%: %s → %s\n", alert.ChangePct, alert.Previous, alert.Current)
		}
	}
	return nil
}
