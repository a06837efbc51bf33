// cmd/literary-agent/cmd_social.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openclaw/literary-agent/internal/service"
)

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Promotional copy for the book catalog",
}

var socialPostFlags struct {
	book     string
	platform string
	language string
}

var socialPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Generate a single post for one platform",
	RunE:  runSocialPost,
}

var socialPlanFlags struct {
	language string
}

var socialPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and save a 7-day content plan",
	RunE:  runSocialPlan,
}

func init() {
	socialPostCmd.Flags().StringVar(&socialPostFlags.book, "book", "", "Catalog key of the book to promote (default: first entry)")
	socialPostCmd.Flags().StringVar(&socialPostFlags.platform, "platform", "twitter", "Target platform: twitter, instagram, facebook, linkedin or tiktok")
	socialPostCmd.Flags().StringVar(&socialPostFlags.language, "language", "EN", "Content language (EN or ES)")

	socialPlanCmd.Flags().StringVar(&socialPlanFlags.language, "language", "EN", "Content language (EN or ES)")

	socialCmd.AddCommand(socialPostCmd)
	socialCmd.AddCommand(socialPlanCmd)
}

func runSocialPost(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	if socialPostFlags.book != "" {
		if _, err := tk.social.Book(socialPostFlags.book); err != nil {
			return err
		}
	}

	var label, content string
	switch strings.ToLower(socialPostFlags.platform) {
	case "twitter":
		label, content = "🐦 TWITTER", tk.social.Tweet(socialPostFlags.book, socialPostFlags.language)
	case "instagram":
		label, content = "📸 INSTAGRAM", tk.social.InstagramCaption(socialPostFlags.book, socialPostFlags.language)
	case "facebook":
		label, content = "📘 FACEBOOK", tk.social.FacebookPost(socialPostFlags.book, socialPostFlags.language)
	case "linkedin":
		label, content = "💼 LINKEDIN", tk.social.LinkedInPost(socialPostFlags.book, socialPostFlags.language)
	case "tiktok":
		label, content = "🎵 TIKTOK", tk.social.TikTokScript(socialPostFlags.book, socialPostFlags.language)
	default:
		return fmt.Errorf("unknown platform %q (want twitter, instagram, facebook, linkedin or tiktok)", socialPostFlags.platform)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s:\n%s\n%s\n", label, strings.Repeat("-", 40), content)
	return nil
}

func runSocialPlan(cmd *cobra.Command, _ []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}

	lang := strings.ToUpper(socialPlanFlags.language)
	plan := tk.social.WeeklyPlan(lang)
	path, err := tk.social.SaveWeeklyPlan(plan, lang)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, service.FormatWeeklyPlan(plan, lang))
	fmt.Fprintf(out, "\n📄 Plan saved to: %s\n", path)
	return nil
}
