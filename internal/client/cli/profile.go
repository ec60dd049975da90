package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/navigation"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

// Profile shows the signed-in user, or another user given an id, with
// their listings.
func (a *App) Profile(ctx context.Context, args []string) error {
	me, err := a.store.User()
	if err != nil {
		return err
	}
	userID := me.UserID
	if len(args) > 0 {
		if userID, err = idArg(args, "profile [userId]"); err != nil {
			return err
		}
	}
	a.router.Navigate(navigation.RouteProfile)

	u, err := a.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	a.printf("%s (id %d)\n", u.Username, u.UserID)
	a.printf("  Email:      %s\n", orDash(u.Email))
	a.printf("  Student ID: %s\n", orDash(u.StudentID))
	a.printf("  Bio:        %s\n", orDash(u.Bio))
	if pic := a.norm.ProfilePicture(u.ProfilePicture); pic != "" {
		a.printf("  Picture:    %s\n", shorten(pic, 80))
	}

	items, err := a.items.ByUser(ctx, userID)
	if err != nil {
		return err
	}
	a.println()
	a.printItems(items)
	return nil
}

// EditProfile asks for new values; an empty answer keeps the current one.
// Only changed fields are sent.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	me, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.RouteProfile)

	var upd models.ProfileUpdate
	changed := false
	ask := func(dst **string, label, current string) error {
		v, err := a.promptDefault(label, current)
		if err != nil {
			return err
		}
		if v != current {
			*dst = &v
			changed = true
		}
		return nil
	}

	if err := ask(&upd.Username, "Username", me.Username); err != nil {
		return err
	}
	if err := ask(&upd.Bio, "Bio", me.Bio); err != nil {
		return err
	}
	parts := make([]string, 0, len(normalize.Avatars()))
	for _, av := range normalize.Avatars() {
		parts = append(parts, av.Emoji+" "+av.ID)
	}
	a.println("Avatars: " + strings.Join(parts, "  "))
	if err := ask(&upd.ProfilePicture, "Avatar id or image URL", me.ProfilePicture); err != nil {
		return err
	}

	if !changed {
		a.println("Nothing to update")
		return nil
	}
	if _, err := a.users.Update(ctx, me.UserID, upd); err != nil {
		return err
	}
	merged, err := a.store.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}
	a.printf("Profile updated, %s\n", merged.Username)
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{"upload <path>"}
	}
	a.router.Navigate(navigation.RouteUploads)
	url, err := a.uploadFile(ctx, args[0])
	if err != nil {
		return err
	}
	a.println("Uploaded:", a.norm.Image(url))
	return nil
}

func (a *App) Uploads(ctx context.Context, _ []string) error {
	a.router.Navigate(navigation.RouteUploads)
	files, err := a.uploads.ListFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.println("No uploaded files.")
		return nil
	}
	for _, f := range files {
		a.println(" ", f)
	}
	return nil
}

func (a *App) Borrowed(ctx context.Context, _ []string) error {
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.RouteBorrow)
	recs, err := a.borrow.Borrowed(ctx, u.UserID)
	if err != nil {
		return err
	}
	a.printBorrow(recs)
	return nil
}

func (a *App) Lent(ctx context.Context, _ []string) error {
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.RouteBorrow)
	recs, err := a.borrow.Lent(ctx, u.UserID)
	if err != nil {
		return err
	}
	a.printBorrow(recs)
	return nil
}

func (a *App) printBorrow(recs []models.BorrowRecord) {
	if len(recs) == 0 {
		a.println("No borrow records.")
		return
	}
	a.table("ID\tITEM\tSTATUS\tBORROWED\tDUE\tRETURNED", func(w *tabwriter.Writer) {
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, orDash(r.ItemTitle), r.Status,
				orDash(r.BorrowedAt), orDash(r.ExpectedReturnDate), orDash(r.ActualReturnDate))
		}
	})
}

func (a *App) Route(context.Context, []string) error {
	a.println(a.router.Current())
	return nil
}
