package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

func (a *App) table(header string, rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	_ = w.Flush()
}

func (a *App) printItems(items []models.Item) {
	if len(items) == 0 {
		a.println("No items found.")
		return
	}
	a.table("ID\tTITLE\tTYPE\tCONDITION\tCATEGORY\tLOCATION\tSTATUS", func(w *tabwriter.Writer) {
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				it.ID, it.Title, it.Type, it.Condition, it.Category.Name, it.Location.Name, it.Status)
		}
	})
	a.printf("Showing %d %s\n", len(items), plural(len(items), "item", "items"))
}

func (a *App) printItem(it models.Item) {
	a.printf("%s [%s]\n", it.Title, it.Status)
	a.printf("  Type:      %s\n", it.Type)
	if it.Type == models.ItemTypeSwap && it.SwapWith != "" {
		a.printf("  Swap for:  %s\n", it.SwapWith)
	}
	a.printf("  Condition: %s\n", it.Condition)
	a.printf("  Category:  %s\n", it.Category.Name)
	a.printf("  Location:  %s\n", describeLocation(it.Location))
	if it.Owner != nil {
		a.printf("  Owner:     %s (id %d)\n", it.Owner.Username, it.Owner.UserID)
	}
	if it.Phone != "" {
		a.printf("  Phone:     %s\n", it.Phone)
	}
	if it.PostedAt != "" {
		a.printf("  Posted:    %s\n", it.PostedAt)
	}
	for _, img := range it.Images {
		a.printf("  Image:     %s\n", shorten(img, 80))
	}
	if it.Description != "" {
		a.printf("\n%s\n", it.Description)
	}
}

func (a *App) printTuitions(ts []models.Tuition) {
	if len(ts) == 0 {
		a.println("No tuitions found.")
		return
	}
	a.table("ID\tSUBJECT\tCLASS\tSALARY\tDAYS/WEEK\tLOCATION\tSTATUS", func(w *tabwriter.Writer) {
		for _, t := range ts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%d\t%s\t%s\n",
				t.TuitionID, t.Subject, t.Clazz, t.Salary, t.DaysWeek, t.Location, t.Status)
		}
	})
	a.printf("Showing %d %s\n", len(ts), plural(len(ts), "tuition", "tuitions"))
}

func (a *App) printTuition(t models.Tuition) {
	a.printf("%s, %s [%s]\n", t.Subject, t.Clazz, t.Status)
	a.printf("  Salary:    %.0f\n", t.Salary)
	a.printf("  Days/week: %d\n", t.DaysWeek)
	a.printf("  Location:  %s\n", t.Location)
	if t.TutorPreference != "" {
		a.printf("  Tutor:     %s\n", t.TutorPreference)
	}
	a.printf("  Phone:     %s\n", t.ContactPhone)
	if t.AddressURL != "" {
		a.printf("  Address:   %s\n", t.AddressURL)
	}
	if t.CanSwap {
		a.printf("  Swap:      %s\n", t.SwapDetails)
	}
	if t.User != nil {
		a.printf("  Posted by: %s (id %d)\n", t.User.Username, t.User.UserID)
	}
}

func describeLocation(d models.Descriptor) string {
	if d.Type == "" {
		return d.Name
	}
	return d.Name + " (" + d.Type + ")"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// shorten keeps data URLs from flooding the terminal.
func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
