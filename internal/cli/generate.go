package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"adspark-ai-wizard/internal/adapter/autosave"
	"adspark-ai-wizard/internal/app"
	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

var (
	genForm      formData
	genQuick     bool
	genScrape    bool
	genSaveDraft bool
	genSave      bool
	genNoInput   bool
	genDelay     time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate three campaign variants",
	Long: `Generate three Google Ads campaign variants for a business.

Missing inputs are asked for interactively unless --no-input is set.
With --save-draft the answers are saved as a draft while you type, and
the generated variants are added to it at the end.

Example:
  adsparkctl generate --business "Yoga studio in Austin" --budget 50 \
    --audience "Adults 25-45" --goals "Class signups" --website yoga.example --scrape`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genForm.BusinessDescription, "business", "", "business description")
	f.StringVar(&genForm.TargetAudience, "audience", "", "target audience")
	f.StringVar(&genForm.Budget, "budget", "", "daily budget in currency units")
	f.StringVar(&genForm.Currency, "currency", "USD", "ISO currency code")
	f.StringVar(&genForm.Goals, "goals", "", "campaign goals")
	f.StringVar(&genForm.WebsiteURL, "website", "", "website URL")
	f.BoolVar(&genQuick, "quick", false, "use the lighter quick profile")
	f.BoolVar(&genScrape, "scrape", false, "scrape the website for prompt hints")
	f.BoolVar(&genSaveDraft, "save-draft", false, "autosave the wizard state as a draft")
	f.BoolVar(&genSave, "save", false, "pick a variant and save it as a campaign")
	f.BoolVar(&genNoInput, "no-input", false, "fail instead of prompting for missing inputs")
	f.DurationVar(&genDelay, "autosave-delay", autosave.DefaultDelay, "quiet period before a draft is saved")
	rootCmd.AddCommand(generateCmd)
}

// formData mirrors the first wizard step as stored in drafts.
type formData struct {
	BusinessDescription string `json:"businessDescription"`
	TargetAudience      string `json:"targetAudience"`
	Budget              string `json:"budget"`
	Currency            string `json:"currency,omitempty"`
	Goals               string `json:"goals"`
	WebsiteURL          string `json:"websiteUrl"`
}

// wizardState is the draft payload written by the CLI. The form fields sit
// at the top level, as the web wizard stores them.
type wizardState struct {
	formData
	Step     int                  `json:"step"`
	Scraped  *domain.ScrapedHints `json:"scrapedData,omitempty"`
	Variants []domain.Variant     `json:"variants,omitempty"`
}

func (s wizardState) payload() json.RawMessage {
	data, _ := json.Marshal(s)
	return data
}

func (f formData) request() (domain.CampaignRequest, error) {
	budget, err := decimal.NewFromString(strings.TrimSpace(f.Budget))
	if err != nil {
		return domain.CampaignRequest{}, fmt.Errorf("%w: budget %q is not a number", domain.ErrInvalidRequest, f.Budget)
	}
	req := domain.CampaignRequest{
		BusinessDescription: f.BusinessDescription,
		TargetAudience:      f.TargetAudience,
		Budget:              budget,
		Currency:            f.Currency,
		Goals:               f.Goals,
		WebsiteURL:          f.WebsiteURL,
	}
	return req, req.Validate()
}

// draftWriter creates the draft on the first save and updates it after.
type draftWriter struct {
	drafts port.DraftUseCase
	userID string

	mu sync.Mutex
	id string
}

func (d *draftWriter) save(ctx context.Context, payload json.RawMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.id == "" {
		draft, err := d.drafts.CreateDraft(ctx, d.userID, payload)
		if err != nil {
			return err
		}
		d.id = draft.ID
		return nil
	}
	_, err := d.drafts.UpdateDraft(ctx, d.id, d.userID, payload)
	return err
}

func (d *draftWriter) draftID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
		state := wizardState{Step: 1, formData: genForm}

		var (
			saver  *autosave.Saver
			writer *draftWriter
		)
		if genSaveDraft {
			writer = &draftWriter{drafts: a.DraftUseCase, userID: userID}
			saver = autosave.New(writer.save, genDelay, logger)
			defer saver.Close()
		}
		touch := func() {
			if saver != nil {
				saver.Touch(state.payload())
			}
		}

		if err := askMissing(&state.formData, genNoInput, touch); err != nil {
			return err
		}
		req, err := state.formData.request()
		if err != nil {
			return err
		}
		req.QuickMode = genQuick

		if genScrape {
			page, err := a.Scraper.Scrape(ctx, req.WebsiteURL)
			if err != nil {
				logger.Warn("scrape failed, continuing without website insights", slog.Any("error", err))
			} else {
				req.Scraped = page.Hints()
				state.Scraped = req.Scraped
				touch()
			}
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Generating campaigns...")
		variants, err := a.Generate.Generate(ctx, req)
		if err != nil {
			return describeError(err)
		}

		state.Step, state.Variants = 2, variants
		if saver != nil {
			saver.Touch(state.payload())
			if err := saver.Flush(ctx); err != nil {
				return fmt.Errorf("failed to save draft: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Draft saved: %s\n", writer.draftID())
		}

		out := cmd.OutOrStdout()
		if jsonOut {
			if err := printJSON(out, variants); err != nil {
				return err
			}
		} else if err := printVariants(out, variants); err != nil {
			return err
		}

		if !genSave {
			return nil
		}
		idx, err := pickVariant(variants)
		if err != nil {
			return err
		}
		saved, err := a.CampaignUseCase.SaveCampaign(ctx, userID, req, variants[idx])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Campaign saved: %s (%s)\n", saved.ID, saved.Status)
		return nil
	})
}

type question struct {
	label    string
	value    *string
	validate promptui.ValidateFunc
}

func askMissing(f *formData, noInput bool, answered func()) error {
	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("required")
		}
		return nil
	}
	questions := []question{
		{"Business description", &f.BusinessDescription, required},
		{"Target audience", &f.TargetAudience, required},
		{"Daily budget", &f.Budget, validateBudget},
		{"Campaign goals", &f.Goals, required},
		{"Website URL", &f.WebsiteURL, validateWebsite},
	}
	for _, q := range questions {
		if strings.TrimSpace(*q.value) != "" {
			continue
		}
		if noInput {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidRequest, strings.ToLower(q.label))
		}
		prompt := promptui.Prompt{Label: q.label, Validate: q.validate}
		answer, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				os.Exit(0)
			}
			return err
		}
		*q.value = strings.TrimSpace(answer)
		answered()
	}
	return nil
}

func validateBudget(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("budget must be a number")
	}
	if !d.IsPositive() {
		return errors.New("budget must be greater than 0")
	}
	return nil
}

func validateWebsite(s string) error {
	if !strings.Contains(s, ".") {
		return errors.New("website URL must contain a domain")
	}
	return nil
}

func pickVariant(variants []domain.Variant) (int, error) {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = fmt.Sprintf("%s - %s", v.Name, truncate(v.Strategy, 60))
	}
	prompt := promptui.Select{Label: "Variant to save", Items: names, Size: len(names)}
	idx, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			os.Exit(0)
		}
		return 0, err
	}
	return idx, nil
}

func printVariants(out io.Writer, variants []domain.Variant) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tBIDDING\tDAILY\tKEYWORDS\tADS\tEST. CTR")
	for i, v := range variants {
		ctr := "-"
		if v.Performance != nil {
			ctr = fmt.Sprintf("%.1f%%", v.Performance.SimulatedCTR*100)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d+%d\t%d\t%s\n",
			i+1, truncate(v.Name, 32), v.Bidding.Strategy,
			domain.FromMicros(v.Budget.DailyMicros).StringFixed(2),
			len(v.Keywords.Positive), len(v.Keywords.Negative), len(v.Ads), ctr)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for i, v := range variants {
		fmt.Fprintf(out, "\n%d. %s\n   %s\n", i+1, v.Name, v.Strategy)
		if len(v.Ads) > 0 && len(v.Ads[0].Headlines) > 0 {
			fmt.Fprintf(out, "   Headlines: %s\n", strings.Join(v.Ads[0].Headlines, " | "))
		}
	}
	return nil
}

// describeError adds the diagnostic detail the API returns as "details".
func describeError(err error) error {
	var ge *domain.GenerationError
	if !errors.As(err, &ge) {
		return err
	}
	if d := ge.Details(); d != ge.Message {
		return fmt.Errorf("%s (%s)", ge.Message, d)
	}
	return errors.New(ge.Message)
}

func draftTitle(payload json.RawMessage) string {
	var s struct {
		BusinessDescription string `json:"businessDescription"`
	}
	if json.Unmarshal(payload, &s) != nil || s.BusinessDescription == "" {
		return "(untitled)"
	}
	return s.BusinessDescription
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
