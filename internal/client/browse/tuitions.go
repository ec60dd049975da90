package browse

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

type TuitionFilter struct {
	// Search matches subject or owner username.
	Search string
	// Subject is a substring match, Class an exact one.
	Subject string
	Class   string
	Status  string
}

func (f TuitionFilter) Active() bool {
	return f != TuitionFilter{}
}

func (f TuitionFilter) Match(t models.Tuition) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		owner := ""
		if t.User != nil {
			owner = t.User.Username
		}
		if !contains(t.Subject, q) && !contains(owner, q) {
			return false
		}
	}
	if f.Subject != "" && !contains(t.Subject, strings.ToLower(f.Subject)) {
		return false
	}
	if f.Class != "" && f.Class != t.Clazz {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, string(t.Status)) {
		return false
	}
	return true
}

func (f TuitionFilter) Tuitions(ts []models.Tuition) []models.Tuition {
	out := make([]models.Tuition, 0, len(ts))
	for _, t := range ts {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ParseTuitionFilter reads -subject, -class and -status; the remaining
// words form the search text.
func ParseTuitionFilter(args []string) (TuitionFilter, error) {
	var f TuitionFilter
	fs := flag.NewFlagSet("tuitions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.Subject, "subject", "", "subject substring")
	fs.StringVar(&f.Class, "class", "", "class level")
	fs.StringVar(&f.Status, "status", "", "available, taken or completed")
	if err := fs.Parse(args); err != nil {
		return TuitionFilter{}, err
	}
	f.Search = strings.TrimSpace(strings.Join(fs.Args(), " "))
	return f, nil
}
