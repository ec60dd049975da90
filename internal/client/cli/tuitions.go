package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/browse"
	"github.com/dmitrijs2005/uniswap/internal/client/forms"
	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/navigation"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

func (a *App) Tuitions(ctx context.Context, args []string) error {
	f, err := browse.ParseTuitionFilter(args)
	if err != nil {
		return usageError{"tuitions [-subject s] [-class c] [-status available|taken|completed] [text]"}
	}
	a.router.Navigate(navigation.RouteTuitions)

	// A single server-side filter narrows the download; the rest is
	// applied locally.
	var ts []models.Tuition
	switch {
	case f.Status != "" && f.Subject == "":
		ts, err = a.tuitions.ByStatus(ctx, models.TuitionStatus(strings.ToLower(f.Status)))
	case f.Subject != "" && f.Status == "":
		ts, err = a.tuitions.BySubject(ctx, f.Subject)
	default:
		ts, err = a.tuitions.List(ctx)
	}
	if err != nil {
		return err
	}
	a.printTuitions(f.Tuitions(ts))
	return nil
}

func (a *App) MyTuitions(ctx context.Context, _ []string) error {
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.RouteTuitions)
	ts, err := a.tuitions.ByUser(ctx, u.UserID)
	if err != nil {
		return err
	}
	a.printTuitions(ts)
	return nil
}

func (a *App) Tuition(ctx context.Context, args []string) error {
	id, err := idArg(args, "tuition <id>")
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.TuitionRoute(strconv.FormatInt(id, 10)))
	t, err := a.tuitions.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printTuition(*t)
	return nil
}

func (a *App) PostTuition(ctx context.Context, _ []string) error {
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.RoutePost)

	f, err := a.tuitionForm(forms.TuitionForm{})
	if err != nil {
		return err
	}
	p, err := f.Payload()
	if err != nil {
		return err
	}
	t, err := a.tuitions.Create(ctx, u.UserID, p)
	if err != nil {
		return err
	}
	a.printf("Tuition posted successfully! (id %d)\n", t.TuitionID)
	a.router.Navigate(navigation.RouteTuitions)
	return nil
}

func (a *App) EditTuition(ctx context.Context, args []string) error {
	id, err := idArg(args, "edit-tuition <id>")
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.TuitionRoute(strconv.FormatInt(id, 10)))

	cur, err := a.tuitions.Get(ctx, id)
	if err != nil {
		return err
	}
	seed := forms.TuitionForm{
		Subject:         cur.Subject,
		Class:           cur.Clazz,
		LocationID:      cur.Location,
		Salary:          strconv.FormatFloat(cur.Salary, 'f', -1, 64),
		DaysWeek:        strconv.Itoa(cur.DaysWeek),
		Phone:           cur.ContactPhone,
		AddressURL:      cur.AddressURL,
		TutorPreference: cur.TutorPreference,
		CanSwap:         cur.CanSwap,
		SwapDetails:     cur.SwapDetails,
	}
	f, err := a.tuitionForm(seed)
	if err != nil {
		return err
	}
	p, err := f.Payload()
	if err != nil {
		return err
	}
	if cur.Status != "" {
		p.Status = cur.Status
	}
	t, err := a.tuitions.Update(ctx, id, p)
	if err != nil {
		return err
	}
	a.printf("Tuition %d updated\n", t.TuitionID)
	return nil
}

func (a *App) TakeTuition(ctx context.Context, args []string) error {
	id, err := idArg(args, "take <id>")
	if err != nil {
		return err
	}
	t, err := a.tuitions.MarkTaken(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Tuition %d is now %s\n", id, orDash(string(t.Status)))
	return nil
}

func (a *App) CompleteTuition(ctx context.Context, args []string) error {
	id, err := idArg(args, "complete <id>")
	if err != nil {
		return err
	}
	t, err := a.tuitions.MarkCompleted(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Tuition %d is now %s\n", id, orDash(string(t.Status)))
	return nil
}

func (a *App) DeleteTuition(ctx context.Context, args []string) error {
	id, err := idArg(args, "delete-tuition <id>")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete tuition %d?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.tuitions.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Tuition deleted")
	return nil
}

func (a *App) tuitionForm(seed forms.TuitionForm) (forms.TuitionForm, error) {
	f := seed
	var err error
	ask := func(dst *string, label string) {
		if err == nil {
			*dst, err = a.promptDefault(label, *dst)
		}
	}

	ask(&f.Subject, "Subject")
	ask(&f.Class, "Class")
	if err == nil {
		a.println(describeOptions(normalize.Locations()))
	}
	ask(&f.LocationID, "Location id")
	ask(&f.Salary, "Salary (per month)")
	ask(&f.DaysWeek, "Days per week")
	ask(&f.Phone, "Contact phone")
	ask(&f.AddressURL, "Address link (optional)")
	ask(&f.TutorPreference, "Tutor preference (male, female, both)")
	if err != nil {
		return forms.TuitionForm{}, err
	}

	swap, err := Confirm(a.reader, "Open to a tuition exchange?", a.out)
	if err != nil {
		return forms.TuitionForm{}, err
	}
	f.CanSwap = swap
	if f.CanSwap {
		ask(&f.SwapDetails, "Swap details")
	} else {
		f.SwapDetails = ""
	}
	return f, err
}
