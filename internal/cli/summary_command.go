package cli

import (
	"context"
	"fmt"

	"spacetime/internal/domain"
	"spacetime/internal/errors"
	"spacetime/internal/period"
	"spacetime/internal/report"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command. With no period argument the summary
// covers this_week. The today period produces an entry listing rather than
// a bucketed summary, so combining it with --project is rejected.
func (c *SummaryCommand) Execute(ctx context.Context, args []string, byProject bool) error {
	keyword := period.ThisWeek.Keyword()
	if len(args) > 0 {
		keyword = args[0]
	}

	now := timeNow()
	res, err := period.Resolve(keyword, now)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entries, err := c.searchRange(ctx, res.Range)
	if err != nil {
		return c.errorHandler.Handle("summarize entries", err)
	}

	switch {
	case res.Period == period.Today:
		if byProject {
			return c.errorHandler.HandleSimple(
				errors.NewInvalidInputError("flag", "--project", "project summaries are not available for 'today'"))
		}
		listing, err := report.ListEntriesForDate(entries, now)
		if err != nil {
			return c.errorHandler.Handle("summarize entries", err)
		}
		c.printListing(listing)

	case byProject:
		summary, err := report.SummarizeByProject(entries, res.Range)
		if err != nil {
			return c.errorHandler.Handle("summarize entries", err)
		}
		c.printProjectSummary(summary)

	case res.Weeks != nil:
		// Yearly day view walks the fixed 7-day windows; no whole-period
		// totals line across windows.
		for {
			window, ok := res.Weeks.Next()
			if !ok {
				break
			}
			summary, err := report.SummarizeByDay(entries, window, now)
			if err != nil {
				return c.errorHandler.Handle("summarize entries", err)
			}
			fmt.Println(window.Label)
			c.printDays(summary)
			fmt.Println()
		}

	default:
		summary, err := report.SummarizeByDay(entries, res.Range, now)
		if err != nil {
			return c.errorHandler.Handle("summarize entries", err)
		}
		c.printHeader(summary.Range)
		c.printDays(summary)
		c.printTotals(summary.Totals(c.app.expectedHoursPerDay()))
	}

	return nil
}

// searchRange fetches the entries falling inside the resolved range. The
// database pre-filters by date; the report core applies the same bounds
// again when bucketing.
func (c *SummaryCommand) searchRange(ctx context.Context, rng period.Range) ([]domain.WorkEntry, error) {
	from := rng.Start.Format(domain.DateLayout)
	to := rng.End.Format(domain.DateLayout)
	return c.app.api.SearchEntries(ctx, domain.SearchOptions{FromDate: &from, ToDate: &to})
}

func (c *SummaryCommand) printHeader(rng period.Range) {
	fmt.Printf("%s (%s - %s)\n", rng.Label, rng.Start.Format(domain.DateLayout), rng.End.Format(domain.DateLayout))
}

func (c *SummaryCommand) printDays(summary *report.DailySummary) {
	for _, day := range summary.Days {
		fmt.Printf("  %-9s %s: %6.2f hours\n", day.Date.Weekday(), day.Date.Format(domain.DateLayout), day.Hours)
	}
}

func (c *SummaryCommand) printTotals(totals report.Totals) {
	fmt.Printf("Total:    %.2f hours\n", totals.TotalHours)
	fmt.Printf("Expected: %.2f hours\n", totals.ExpectedHours)
	fmt.Printf("Buffer:   %+.2f hours\n", totals.TimeBuffer)
}

func (c *SummaryCommand) printProjectSummary(summary *report.ProjectSummary) {
	c.printHeader(summary.Range)
	if len(summary.Projects) == 0 {
		fmt.Println("  No entries in this period.")
		return
	}
	for _, project := range summary.Projects {
		fmt.Printf("  %-10s %-25s %6.2f hours\n", project.Code, project.Name, project.Hours)
	}
}

func (c *SummaryCommand) printListing(listing *report.DailyListing) {
	fmt.Printf("Entries for %s\n", listing.Date.Format(domain.DateLayout))
	if len(listing.Entries) == 0 {
		fmt.Println("  No entries logged today.")
		return
	}
	for _, entry := range listing.Entries {
		fmt.Printf("  #%-4d %s - %s  %-10s %-25s %6.2f hours\n",
			entry.ID, entry.StartTime, entry.EndTime, entry.ProjectCode, entry.ProjectName, entry.Hours)
	}
	fmt.Printf("Total: %.2f hours\n", listing.TotalHours)
}
