package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"adspark-ai-wizard/internal/app"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Manage saved wizard drafts",
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts of the user, most recently updated first",
	RunE:  runDraftsList,
}

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftsDelete,
}

func init() {
	draftsCmd.AddCommand(draftsListCmd, draftsDeleteCmd)
	rootCmd.AddCommand(draftsCmd)
}

func runDraftsList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		drafts, err := a.DraftUseCase.ListDrafts(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list drafts: %w", err)
		}
		if jsonOut {
			return printJSON(cmd.OutOrStdout(), drafts)
		}
		if len(drafts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No drafts yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tBUSINESS\tUPDATED")
		for _, d := range drafts {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, truncate(draftTitle(d.Payload), 40), d.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	})
}

func runDraftsDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if err := a.DraftUseCase.DeleteDraft(ctx, args[0], userID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted draft %s\n", args[0])
		return nil
	})
}
