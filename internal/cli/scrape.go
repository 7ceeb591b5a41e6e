package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"adspark-ai-wizard/internal/app"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Extract marketing copy from a website",
	Args:  cobra.ExactArgs(1),
	RunE:  runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		page, err := a.Scraper.Scrape(ctx, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOut {
			return printJSON(out, page)
		}
		fmt.Fprintf(out, "URL:          %s\n", page.URL)
		fmt.Fprintf(out, "Title:        %s\n", page.Title)
		fmt.Fprintf(out, "Description:  %s\n", page.Description)
		fmt.Fprintf(out, "Headlines:    %s\n", strings.Join(page.Headlines, " | "))
		fmt.Fprintf(out, "Stats:        %s\n", strings.Join(page.Stats, ", "))
		fmt.Fprintf(out, "Testimonials: %d\n", len(page.Testimonials))
		fmt.Fprintf(out, "Paragraphs:   %d, list items: %d\n", len(page.Paragraphs), len(page.ListItems))
		return nil
	})
}
