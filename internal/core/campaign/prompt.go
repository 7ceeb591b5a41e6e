package campaign

import (
	"fmt"
	"strings"

	"adspark-ai-wizard/internal/core/domain"
)

// Prompt is the pair of instructions sent to the completion provider.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt renders the system and user instructions for a request. The
// system instruction contains no braces outside its example document, so
// the example can be located in it with Extract.
func BuildPrompt(req domain.CampaignRequest, p Profile) Prompt {
	return Prompt{
		System: systemPrompt(p, req.BudgetMicros()),
		User:   userPrompt(req),
	}
}

func systemPrompt(p Profile, budgetMicros int64) string {
	c := p.Requested
	var b strings.Builder
	b.WriteString("You are a Google Ads certified expert. Generate hyper-optimized, ultra-detailed Google Ads campaigns based on user input.\n\n")
	b.WriteString("CRITICAL RULES:\n")
	fmt.Fprintf(&b, "- Generate exactly %d campaign variants with UNIQUE strategies\n", domain.VariantCount)
	fmt.Fprintf(&b, "- Every variant has exactly %d ads; every ad has exactly %d headlines (max %d characters each) and %d descriptions (max %d characters each)\n",
		c.Ads, c.Headlines, domain.MaxHeadlineLength, c.Descriptions, domain.MaxDescriptionLength)
	fmt.Fprintf(&b, "- Keywords: %d high-intent positive keywords (mix broad/phrase/exact) and %d negative keywords per variant\n",
		c.PositiveKeywords, c.NegativeKeywords)
	fmt.Fprintf(&b, "- Ad groups: %d per variant, each with %d keywords taken from the positive list\n", c.AdGroups, c.AdGroupKeywords)
	fmt.Fprintf(&b, "- Extensions per ad: %d sitelinks, %d callouts, one structured snippet with %d values\n",
		c.Sitelinks, c.Callouts, c.SnippetValues)
	fmt.Fprintf(&b, "- Targeting: %d interests, realistic locations, age ranges and an ad schedule (hours 0-23)\n", c.Interests)
	fmt.Fprintf(&b, "- All money values are micro-units (amount x %d); daily_micros is %d for every variant\n",
		domain.MicrosPerUnit, budgetMicros)
	b.WriteString("- All content must be 100% Google policy compliant (truthful, no guarantees, mobile-optimized)\n")
	b.WriteString("- Provide realistic performance estimates (simulated_ctr between 0.05 and 0.15)\n\n")
	fmt.Fprintf(&b, "The response must contain minimum %d positive keywords, %d ads, %d headlines and %d descriptions per ad; shorter lists are rejected.\n\n",
		p.Required.PositiveKeywords, p.Required.Ads, p.Required.Headlines, p.Required.Descriptions)
	b.WriteString("Return ONLY valid JSON in exactly this format. No markdown, no code fences, no text before or after the JSON. Replace every placeholder with real content:\n")
	b.Write(ExampleDocument(p, budgetMicros))
	return b.String()
}

func userPrompt(req domain.CampaignRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Business: %s\n", req.BusinessDescription)
	fmt.Fprintf(&b, "Target Audience: %s\n", req.TargetAudience)
	fmt.Fprintf(&b, "Daily Budget: %s\n", formatBudget(req))
	fmt.Fprintf(&b, "Goals: %s\n", req.Goals)
	fmt.Fprintf(&b, "Website: %s\n", req.WebsiteURL)

	if !req.Extended.IsZero() {
		b.WriteString("\nAdvertiser preferences (respect them in every variant):\n")
		writeExtended(&b, req.Extended)
	}
	if !req.Scraped.IsZero() {
		b.WriteString("\nWebsite insights (use them to make keywords and ad copy specific to this business):\n")
		writeHints(&b, req.Scraped)
	}

	fmt.Fprintf(&b, "\nGenerate %d unique Google Ads campaign variants optimized for this business.", domain.VariantCount)
	return b.String()
}

func formatBudget(req domain.CampaignRequest) string {
	switch cur := strings.ToUpper(strings.TrimSpace(req.Currency)); cur {
	case "", "USD":
		return "$" + req.Budget.String()
	default:
		return req.Budget.String() + " " + cur
	}
}

func writeExtended(b *strings.Builder, o *domain.ExtendedOptions) {
	if len(o.Sitelinks) > 0 {
		links := make([]string, 0, len(o.Sitelinks))
		for _, s := range o.Sitelinks {
			links = append(links, fmt.Sprintf("%s (%s)", s.Text, s.URL))
		}
		writeList(b, "Sitelinks", links)
	}
	writeList(b, "Callouts", o.Callouts)
	if s := o.Schedule; s != nil {
		fmt.Fprintf(b, "- Ad schedule: %s, %02d:00-%02d:00\n", strings.Join(s.Days, " "), s.StartHour, s.EndHour)
	}
	writeList(b, "Negative keywords", o.NegativeKeywords)
	if t := o.Targeting; t != nil {
		writeList(b, "Locations", t.Locations)
		writeList(b, "Age ranges", t.AgeRanges)
		writeList(b, "Genders", t.Genders)
		writeList(b, "Devices", t.Devices)
		writeList(b, "Interests", t.Interests)
	}
}

func writeHints(b *strings.Builder, h *domain.ScrapedHints) {
	if h.Title != "" {
		fmt.Fprintf(b, "Title: %s\n", h.Title)
	}
	if h.Description != "" {
		fmt.Fprintf(b, "Description: %s\n", h.Description)
	}
	if len(h.Headlines) > 0 {
		fmt.Fprintf(b, "Headlines: %s\n", strings.Join(h.Headlines, " | "))
	}
	if len(h.KeyPoints) > 0 {
		b.WriteString("Key points:\n")
		for _, p := range h.KeyPoints {
			fmt.Fprintf(b, "- %s\n", p)
		}
	}
	if len(h.Stats) > 0 {
		fmt.Fprintf(b, "Stats: %s\n", strings.Join(h.Stats, ", "))
	}
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(items, ", "))
}

// Reminder is appended to the user instruction when a response is
// re-requested after failing validation.
func Reminder(err error) string {
	return fmt.Sprintf("\n\nIMPORTANT: the previous answer was rejected (%v). "+
		"Return ONLY the JSON document described in the system instruction with exactly %d complete variants. "+
		"Do not shorten any list and do not stop before the document is closed.", err, domain.VariantCount)
}
