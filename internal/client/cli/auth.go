package cli

import (
	"context"

	"github.com/dmitrijs2005/uniswap/internal/client/forms"
	"github.com/dmitrijs2005/uniswap/internal/client/navigation"
	"github.com/dmitrijs2005/uniswap/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks through the sign-up form. The local checks run first so
// an invalid form never reaches the backend. Username and email
// availability is checked next, and a taken username can be swapped for
// the backend's suggestion before the form is submitted.
func (a *App) Register(ctx context.Context, _ []string) error {
	a.router.Navigate(navigation.RouteSignup)
	f := forms.NewSignUpForm()

	var err error
	if f.Username, err = a.prompt("Username"); err != nil {
		return err
	}
	if f.Email, err = a.prompt("Email"); err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	f.Password, f.ConfirmPassword = string(password), string(confirm)

	phone, err := a.prompt("Phone number (" + forms.PhonePrefix + " is added for you)")
	if err != nil {
		return err
	}
	f.SetPhone(phone)
	if hint := f.PhoneHint(); hint != "" {
		a.println(hint)
	}
	if f.StudentID, err = a.prompt("Student/Staff ID"); err != nil {
		return err
	}

	if err := f.Validate(); err != nil {
		return err
	}

	if err := f.CheckAvailability(ctx, a.auth); err != nil {
		a.log.Debug(ctx, "availability check failed", "error", err)
	}
	if err := a.offerSuggestion(ctx, f); err != nil {
		return err
	}
	if hint := f.EmailHint(); hint != "" {
		a.println(hint)
	}

	req, err := f.Request()
	if err != nil {
		return err
	}
	sess, err := a.store.SignUp(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Account created. Welcome, %s!\n", sess.User.Username)
	a.router.Navigate(navigation.RouteBrowse)
	return nil
}

func (a *App) offerSuggestion(ctx context.Context, f *forms.SignUpForm) error {
	hint := f.UsernameHint()
	if hint == "" {
		return nil
	}
	suggestion := f.Suggestion()
	if suggestion == "" {
		a.println(hint)
		return nil
	}

	a.printf("%s. Try %q\n", hint, suggestion)
	ok, err := Confirm(a.reader, "Use "+suggestion+"?", a.out)
	if err != nil || !ok {
		return err
	}
	f.ApplySuggestion()
	if err := f.CheckAvailability(ctx, a.auth); err != nil {
		a.log.Debug(ctx, "availability check failed", "error", err)
	}
	if h := f.UsernameHint(); h != "" {
		a.println(h)
	}
	return nil
}

// Login prompts for credentials and signs in. Cached view data of any
// previous user is dropped first.
func (a *App) Login(ctx context.Context, _ []string) error {
	a.router.Navigate(navigation.RouteLogin)

	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.store.SignIn(ctx, email, string(password))
	if err != nil {
		return err
	}
	a.printf("Logged in as %s\n", sess.User.Username)
	a.router.Navigate(navigation.RouteBrowse)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.store.SignOut(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	a.router.Navigate(navigation.RouteLogin)
	return nil
}

func (a *App) Whoami(_ context.Context, _ []string) error {
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.printf("%s <%s> (id %d)\n", u.Username, u.Email, u.UserID)
	return nil
}
