package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/client/browse"
	"github.com/dmitrijs2005/uniswap/internal/client/forms"
	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/navigation"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/viewcache"
)

const allItemsKey = "all"

func (a *App) Items(ctx context.Context, args []string) error {
	f, err := browse.ParseItemFilter(args)
	if err != nil {
		return usageError{"items [-category c] [-condition c] [-type free|swap|rent] [-location-type t] [-location id] [text]"}
	}
	a.router.Navigate(navigation.RouteBrowse)

	items, err := cached(ctx, a, viewcache.Items, allItemsKey, a.items.List)
	if err != nil {
		return err
	}
	a.printItems(f.Items(items))
	return nil
}

func (a *App) Item(ctx context.Context, args []string) error {
	id, err := idArg(args, "item <id>")
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.ItemRoute(strconv.FormatInt(id, 10)))

	it, err := cached(ctx, a, viewcache.Items, "item:"+strconv.FormatInt(id, 10), func(ctx context.Context) (*models.Item, error) {
		return a.items.Get(ctx, id)
	})
	if err != nil {
		return err
	}
	a.printItem(*it)

	if !a.isLoggedIn() {
		return nil
	}
	u, _ := a.store.User()
	if st, err := a.wishlist.Check(ctx, u.UserID, id); err == nil && st.InWishlist {
		a.println("  In your wishlist")
	}
	for _, ch := range a.statusHistory(ctx, u.UserID, it.ID) {
		a.printf("  %s  %s\n", ch.ChangedAt, ch.Status)
	}
	return nil
}

func (a *App) PostItem(ctx context.Context, _ []string) error {
	a.router.Navigate(navigation.RoutePost)
	u, err := a.store.User()
	if err != nil {
		return err
	}

	f, imagePath, err := a.itemForm(forms.ItemForm{})
	if err != nil {
		return err
	}
	// Validate before uploading so a bad form sends nothing.
	if err := f.Validate(); err != nil {
		return err
	}
	if imagePath != "" {
		if f.ImageURL, err = a.uploadFile(ctx, imagePath); err != nil {
			return err
		}
	}

	p, err := f.Payload(a.now())
	if err != nil {
		return err
	}
	it, err := a.items.Create(ctx, p)
	if err != nil {
		return err
	}
	a.recordStatus(ctx, u.UserID, it.ID, it.Status)
	a.printf("Item posted successfully! (id %s)\n", it.ID)
	a.router.Navigate(navigation.RouteBrowse)
	return nil
}

func (a *App) EditItem(ctx context.Context, args []string) error {
	id, err := idArg(args, "edit-item <id>")
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.ItemRoute(strconv.FormatInt(id, 10)))

	cur, err := a.items.Get(ctx, id)
	if err != nil {
		return err
	}
	seed := forms.ItemForm{
		Title:       cur.Title,
		Description: cur.Description,
		CategoryID:  cur.Category.ID,
		Condition:   cur.Condition,
		Type:        string(cur.Type),
		LocationID:  cur.Location.ID,
		Phone:       cur.Phone,
		SwapWith:    cur.SwapWith,
	}
	if len(cur.Images) > 0 && cur.Images[0] != normalize.Placeholder {
		seed.ImageURL = cur.Images[0]
	}

	f, imagePath, err := a.itemForm(seed)
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if imagePath != "" {
		if f.ImageURL, err = a.uploadFile(ctx, imagePath); err != nil {
			return err
		}
	}
	p, err := f.Payload(a.now())
	if err != nil {
		return err
	}
	if cur.Status != "" {
		p.Status = cur.Status
	}

	it, err := a.items.Update(ctx, id, p)
	if err != nil {
		return err
	}
	a.printf("Item %s updated\n", it.ID)
	return nil
}

func (a *App) Exchange(ctx context.Context, args []string) error {
	id, err := idArg(args, "exchange <id>")
	if err != nil {
		return err
	}
	u, err := a.store.User()
	if err != nil {
		return err
	}
	it, err := a.items.MarkExchanged(ctx, id)
	if err != nil {
		return err
	}
	a.recordStatus(ctx, u.UserID, strconv.FormatInt(id, 10), models.ItemStatusExchanged)
	a.printf("Item %s marked as %s\n", orDash(it.ID), models.ItemStatusExchanged)
	return nil
}

func (a *App) DeleteItem(ctx context.Context, args []string) error {
	id, err := idArg(args, "delete-item <id>")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete item %d?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.items.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Item deleted")
	a.router.Navigate(navigation.RouteProfile)
	return nil
}

// itemForm prompts for every item field, offering seed's values as
// defaults. The returned path is a local image to upload, if any.
func (a *App) itemForm(seed forms.ItemForm) (forms.ItemForm, string, error) {
	f := seed
	var err error
	ask := func(dst *string, label string) {
		if err == nil {
			*dst, err = a.promptDefault(label, *dst)
		}
	}

	ask(&f.Title, "Title")
	ask(&f.Description, "Description")
	if err == nil {
		a.println(describeOptions(normalize.Categories()))
	}
	ask(&f.CategoryID, "Category")
	ask(&f.Condition, "Condition (new, like-new, good, fair, poor)")
	ask(&f.Type, "Type (free, swap, rent)")
	if err == nil && strings.EqualFold(strings.TrimSpace(f.Type), string(models.ItemTypeSwap)) {
		ask(&f.SwapWith, "What do you want in exchange?")
	}
	if err == nil {
		a.println(describeOptions(normalize.Locations()))
	}
	ask(&f.LocationID, "Location id")
	ask(&f.Phone, "Phone")

	var image string
	ask(&image, "Image file (optional)")
	if err != nil {
		return forms.ItemForm{}, "", err
	}
	return f, image, nil
}

func (a *App) uploadFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()
	return a.uploads.UploadImage(ctx, filepath.Base(path), file)
}

func (a *App) statusHistory(ctx context.Context, userID int64, itemID string) []models.StatusChange {
	var hist []models.StatusChange
	if a.caches == nil {
		return nil
	}
	if _, err := viewcache.GetJSON(ctx, a.caches, viewcache.ItemStatusHistory, userID, itemID, &hist); err != nil {
		a.log.Warn(ctx, "failed to read status history", "error", err)
	}
	return hist
}

// recordStatus appends to the item's locally kept status history.
func (a *App) recordStatus(ctx context.Context, userID int64, itemID, status string) {
	if a.caches == nil || itemID == "" {
		return
	}
	hist := append(a.statusHistory(ctx, userID, itemID), models.StatusChange{
		Status:    status,
		ChangedAt: a.now().UTC().Format(time.RFC3339),
	})
	if err := viewcache.PutJSON(ctx, a.caches, viewcache.ItemStatusHistory, userID, itemID, hist); err != nil {
		a.log.Warn(ctx, "failed to record status history", "error", err)
	}
}

func (a *App) promptDefault(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, shorten(current, 40))
	}
	v, err := a.prompt(label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func describeOptions(ds []models.Descriptor) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, d.ID+"="+d.Name)
	}
	return "Options: " + strings.Join(parts, ", ")
}

func idArg(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, usageError{usage}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError{usage}
	}
	return id, nil
}
