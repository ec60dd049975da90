package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

// PhonePrefix is forced onto every phone number entered.
const PhonePrefix = "+880"

const (
	MsgPasswordMismatch  = "Passwords do not match"
	MsgPasswordTooShort  = "Password must be at least 6 characters long"
	MsgPhoneInvalid      = "Please enter a valid phone number"
	MsgPhoneIncomplete   = "Please enter a complete 10-digit phone number (e.g., +880 1613732227)"
	MsgStudentIDRequired = "Student/Staff ID is required"
	MsgUsernameTaken     = "Username is not available"
	MsgEmailTaken        = "Email is already registered"

	MsgUsernameUnavailable = "Username not available"
	MsgUsernameAvailable   = "Username available"
	MsgEmailUnavailable    = "Email already registered"
	MsgEmailAvailable      = "Email available"
)

const (
	minPasswordLength = 6
	minUsernameCheck  = 3
	phoneDigits       = 10
)

// AvailabilityChecker asks the backend whether a username or email is
// still free; services.AuthService satisfies it.
type AvailabilityChecker interface {
	CheckUsername(ctx context.Context, username string) (*models.Availability, error)
	CheckEmail(ctx context.Context, email string) (*models.Availability, error)
}

// SignUpForm holds the registration fields and the last availability
// answers. Use NewSignUpForm; the zero value has no phone prefix and
// treats both names as taken.
type SignUpForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	StudentID       string

	username models.Availability
	email    models.Availability
}

func NewSignUpForm() *SignUpForm {
	return &SignUpForm{
		Phone:    PhonePrefix,
		username: models.Availability{Available: true},
		email:    models.Availability{Available: true},
	}
}

// SetPhone stores v with the country prefix enforced.
func (f *SignUpForm) SetPhone(v string) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, PhonePrefix) {
		v = PhonePrefix + strings.Replace(v, PhonePrefix, "", 1)
	}
	f.Phone = v
}

// PhoneHint is the inline phone message, "" when the number is complete.
func (f *SignUpForm) PhoneHint() string {
	if phoneValid(f.Phone) {
		return ""
	}
	return MsgPhoneIncomplete
}

func phoneValid(phone string) bool {
	rest := strings.TrimSpace(strings.Replace(phone, PhonePrefix, "", 1))
	rest = strings.ReplaceAll(rest, " ", "")
	if len(rest) != phoneDigits {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CheckAvailability refreshes the username answer once the username has
// at least three characters and the email answer once the email contains
// an @. A failed check keeps the previous answer; the errors are returned
// for logging only.
func (f *SignUpForm) CheckAvailability(ctx context.Context, c AvailabilityChecker) error {
	var errs []error
	if len(f.Username) >= minUsernameCheck {
		av, err := c.CheckUsername(ctx, f.Username)
		if err != nil {
			errs = append(errs, fmt.Errorf("check username: %w", err))
		} else {
			f.username = *av
		}
	}
	if strings.Contains(f.Email, "@") {
		av, err := c.CheckEmail(ctx, f.Email)
		if err != nil {
			errs = append(errs, fmt.Errorf("check email: %w", err))
		} else {
			f.email = *av
		}
	}
	return errors.Join(errs...)
}

// UsernameHint is the inline username message shown under the field.
func (f *SignUpForm) UsernameHint() string {
	if len(f.Username) < minUsernameCheck {
		return ""
	}
	if f.username.Available {
		return MsgUsernameAvailable
	}
	return MsgUsernameUnavailable
}

func (f *SignUpForm) EmailHint() string {
	if !strings.Contains(f.Email, "@") {
		return ""
	}
	if f.email.Available {
		return MsgEmailAvailable
	}
	return MsgEmailUnavailable
}

// Suggestion is the alternative username offered by the backend when the
// chosen one is taken.
func (f *SignUpForm) Suggestion() string {
	if f.username.Available {
		return ""
	}
	return f.username.Suggestion
}

// ApplySuggestion replaces the username with the suggestion. It reports
// false when there is none. The new name still has to be checked.
func (f *SignUpForm) ApplySuggestion() bool {
	s := f.Suggestion()
	if s == "" {
		return false
	}
	f.Username = s
	f.username = models.Availability{Available: true}
	return true
}

// Validate runs the submit checks in order and reports the first failure.
// Username and email are required before anything else is looked at.
func (f *SignUpForm) Validate() error {
	fail := func(field, msg string) error {
		return &ValidationError{Message: msg, Fields: map[string]string{field: msg}}
	}

	switch {
	case strings.TrimSpace(f.Username) == "":
		return fail("username", MsgRequired)
	case strings.TrimSpace(f.Email) == "":
		return fail("email", MsgRequired)
	case f.Password != f.ConfirmPassword:
		return fail("confirmPassword", MsgPasswordMismatch)
	case len(f.Password) < minPasswordLength:
		return fail("password", MsgPasswordTooShort)
	case f.Phone == "" || !phoneValid(f.Phone):
		return fail("phone", MsgPhoneInvalid)
	case strings.TrimSpace(f.StudentID) == "":
		return fail("studentId", MsgStudentIDRequired)
	case !f.username.Available:
		return fail("username", MsgUsernameTaken)
	case !f.email.Available:
		return fail("email", MsgEmailTaken)
	}
	return nil
}

// Request validates the form and builds the registration body.
func (f *SignUpForm) Request() (models.SignUpRequest, error) {
	if err := f.Validate(); err != nil {
		return models.SignUpRequest{}, err
	}
	return models.SignUpRequest{
		Username:  strings.TrimSpace(f.Username),
		Email:     strings.TrimSpace(f.Email),
		Password:  f.Password,
		Phone:     strings.ReplaceAll(f.Phone, " ", ""),
		StudentID: strings.TrimSpace(f.StudentID),
	}, nil
}
