package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/navigation"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/viewcache"
)

const wishlistKey = "all"

func (a *App) Wishlist(ctx context.Context, _ []string) error {
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.RouteWishlist)

	entries, err := cached(ctx, a, viewcache.Wishlist, wishlistKey, func(ctx context.Context) ([]models.WishlistEntry, error) {
		return a.wishlist.ByUser(ctx, u.UserID)
	})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.println("Your wishlist is empty.")
		return nil
	}
	a.table("WISH\tITEM\tTITLE\tNOTES", func(w *tabwriter.Writer) {
		for _, e := range entries {
			title := "-"
			if len(e.Items) > 0 {
				title = e.Items[0].Title
			}
			ref := strconv.FormatInt(e.ItemID, 10)
			if e.ItemID == 0 && e.TuitionID != 0 {
				ref = "tuition " + strconv.FormatInt(e.TuitionID, 10)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.WishlistID, ref, title, orDash(e.Notes))
		}
	})
	return nil
}

func (a *App) WishAdd(ctx context.Context, args []string) error {
	itemID, err := idArg(args, "wish-add <itemId> [notes]")
	if err != nil {
		return err
	}
	u, err := a.store.User()
	if err != nil {
		return err
	}
	e, err := a.wishlist.Add(ctx, u.UserID, itemID, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	a.printf("Added item %d to your wishlist (wish %d)\n", itemID, e.WishlistID)
	return nil
}

func (a *App) WishRemove(ctx context.Context, args []string) error {
	itemID, err := idArg(args, "wish-remove <itemId>")
	if err != nil {
		return err
	}
	u, err := a.store.User()
	if err != nil {
		return err
	}
	if err := a.wishlist.Remove(ctx, u.UserID, itemID); err != nil {
		return err
	}
	a.printf("Removed item %d from your wishlist\n", itemID)
	return nil
}

func (a *App) WishNote(ctx context.Context, args []string) error {
	const usage = "wish-note <wishlistId> <notes>"
	id, err := idArg(args, usage)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return usageError{usage}
	}
	if _, err := a.wishlist.UpdateNotes(ctx, id, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.println("Notes updated")
	return nil
}
