// cmd/literary-agent/cmd_outreach.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw/literary-agent/internal/model"
	"github.com/openclaw/literary-agent/internal/service"
)

var outreachCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Library outreach campaigns",
}

var outreachInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the contact store with the starter library list",
	RunE:  runOutreachInit,
}

var outreachRunFlags struct {
	region   string
	language string
	max      int
	real     bool
}

var outreachRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one outreach batch (simulated unless --real)",
	RunE:  runOutreachRun,
}

var outreachTrackFlags struct {
	outcome string
	notes   string
}

var outreachTrackCmd = &cobra.Command{
	Use:   "track <email>",
	Short: "Record the outcome of a contact after a reply",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutreachTrack,
}

var outreachStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics across recorded campaigns",
	RunE:  runOutreachStats,
}

func init() {
	f := outreachRunCmd.Flags()
	f.StringVar(&outreachRunFlags.region, "region", "", "Region filter, e.g. Europa, Norte America (empty = all)")
	f.StringVar(&outreachRunFlags.language, "language", "", "Preferred language filter, e.g. ES, EN (empty = all)")
	f.IntVar(&outreachRunFlags.max, "max", 10, "Batch size cap")
	f.BoolVar(&outreachRunFlags.real, "real", false, "Mark contacts for real instead of simulating")

	t := outreachTrackCmd.Flags()
	t.StringVar(&outreachTrackFlags.outcome, "outcome", "responded", "Outcome label")
	t.StringVar(&outreachTrackFlags.notes, "notes", "", "Free-form notes about the reply")

	outreachCmd.AddCommand(outreachInitCmd)
	outreachCmd.AddCommand(outreachRunCmd)
	outreachCmd.AddCommand(outreachTrackCmd)
	outreachCmd.AddCommand(outreachStatsCmd)
}

func runOutreachInit(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	if err := tk.contacts.Initialize(); err != nil {
		return err
	}
	contacts, err := tk.contacts.Load(model.ContactFilter{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Contact store: %s\n", tk.cfg.ContactsFile())
	fmt.Fprintf(out, "Contacts: %d\n", len(contacts))
	return nil
}

func runOutreachRun(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	result, err := tk.outreach.RunBatch(service.BatchParams{
		Region:   outreachRunFlags.region,
		Language: outreachRunFlags.language,
		MaxItems: outreachRunFlags.max,
		DryRun:   !outreachRunFlags.real,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Status == service.BatchStatusNoContacts {
		fmt.Fprintln(out, "No eligible contacts match those filters.")
		return nil
	}

	fmt.Fprintf(out, "✅ Result: %d libraries contacted\n", result.TotalSent)
	fmt.Fprintf(out, "📄 Report saved to: %s\n", result.ReportFile)
	if result.Record != nil && result.Record.Mode == model.ModeSimulation {
		fmt.Fprintln(out, "(simulation: nothing was marked, rerun with --real)")
	}
	return nil
}

func runOutreachTrack(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	email := args[0]
	ok, err := tk.outreach.Track(email, outreachTrackFlags.outcome, outreachTrackFlags.notes)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("contact not found: %s", email)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", email, outreachTrackFlags.outcome)
	return nil
}

func runOutreachStats(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	stats, err := tk.outreach.Stats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Campaigns run: %d\n", stats.TotalCampaigns)
	fmt.Fprintf(out, "Emails prepared: %d\n", stats.TotalSent)
	if len(stats.ByRegion) > 0 {
		fmt.Fprintln(out, "By region:")
		for region, n := range stats.ByRegion {
			fmt.Fprintf(out, "  %s: %d\n", region, n)
		}
	}
	if len(stats.ByLanguage) > 0 {
		fmt.Fprintln(out, "By language:")
		for language, n := range stats.ByLanguage {
			fmt.Fprintf(out, "  %s: %d\n", language, n)
		}
	}
	return nil
}
