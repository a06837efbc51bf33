// cmd/literary-agent/cmd_dashboard.go
package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/service"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Sales reports, forecast and KPI tracking",
}

var dashboardDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Generate and save the daily sales report",
	RunE:  runDashboardDaily,
}

var dashboardWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate and save the weekly sales report",
	RunE:  runDashboardWeekly,
}

var dashboardForecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Generate and save the monthly sales forecast",
	RunE:  runDashboardForecast,
}

var dashboardKPICmd = &cobra.Command{
	Use:   "kpi",
	Short: "Track KPI values and inspect their trends",
}

var dashboardKPITrackCmd = &cobra.Command{
	Use:   "track <metric> <value>",
	Short: "Append one value to a KPI history",
	Args:  cobra.ExactArgs(2),
	RunE:  runDashboardKPITrack,
}

var dashboardKPITrendFlags struct {
	days int
}

var dashboardKPITrendCmd = &cobra.Command{
	Use:   "trend <metric>",
	Short: "Trend analysis over the most recent days",
	Args:  cobra.ExactArgs(1),
	RunE:  runDashboardKPITrend,
}

func init() {
	dashboardKPITrendCmd.Flags().IntVar(&dashboardKPITrendFlags.days, "days", 7, "Analysis window in days")

	dashboardKPICmd.AddCommand(dashboardKPITrackCmd)
	dashboardKPICmd.AddCommand(dashboardKPITrendCmd)

	dashboardCmd.AddCommand(dashboardDailyCmd)
	dashboardCmd.AddCommand(dashboardWeeklyCmd)
	dashboardCmd.AddCommand(dashboardForecastCmd)
	dashboardCmd.AddCommand(dashboardKPICmd)
}

func runDashboardDaily(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	report, path, err := tk.dashboard.DailyReport()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, service.FormatSalesReport(report))
	fmt.Fprintf(out, "\n📄 Report saved to: %s\n", path)
	return nil
}

func runDashboardWeekly(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	report, path, err := tk.dashboard.WeeklyReport()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, service.FormatSalesReport(report))
	fmt.Fprintf(out, "\n📄 Report saved to: %s\n", path)
	return nil
}

func runDashboardForecast(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	forecast, path, err := tk.dashboard.MonthlyForecast()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔮 Forecast for %s\n", forecast.Month)
	fmt.Fprintf(out, "Projected sales: $%.0f\n", forecast.Projection.SalesUSD)
	fmt.Fprintf(out, "Projected units: %d\n", forecast.Projection.Units)
	fmt.Fprintf(out, "Projected KU page reads: %d\n", forecast.Projection.PageReadsKU)

	names := make([]string, 0, len(forecast.Scenarios))
	for name := range forecast.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(out, "Scenarios:")
	for _, name := range names {
		s := forecast.Scenarios[name]
		fmt.Fprintf(out, "  %s: $%.0f (%s)\n", name, s.SalesUSD, s.Probability)
	}

	fmt.Fprintf(out, "\n📄 Forecast saved to: %s\n", path)
	return nil
}

func runDashboardKPITrack(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	metric := args[0]
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("value must be a number: %q", args[1])
	}

	if err := tk.dashboard.TrackKPI(metric, value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Tracked %s = %g\n", metric, value)
	return nil
}

func runDashboardKPITrend(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	trend, err := tk.dashboard.KPITrend(args[0], dashboardKPITrendFlags.days)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Metric: %s\n", trend.Metric)
	fmt.Fprintf(out, "Window: last %d days (%d points)\n", trend.PeriodDays, trend.DataPoints)
	fmt.Fprintf(out, "Trend: %s\n", trend.Trend)
	if trend.Trend != model.TrendInsufficient {
		fmt.Fprintf(out, "Average: %.2f\n", trend.Average)
		fmt.Fprintf(out, "Change: %+.1f%%\n", trend.ChangePercent)
	}
	return nil
}
