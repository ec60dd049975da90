package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	username    models.Availability
	email       models.Availability
	err         error
	usernameArg []string
	emailArg    []string
}

func (f *fakeChecker) CheckUsername(_ context.Context, u string) (*models.Availability, error) {
	f.usernameArg = append(f.usernameArg, u)
	if f.err != nil {
		return nil, f.err
	}
	av := f.username
	return &av, nil
}

func (f *fakeChecker) CheckEmail(_ context.Context, e string) (*models.Availability, error) {
	f.emailArg = append(f.emailArg, e)
	if f.err != nil {
		return nil, f.err
	}
	av := f.email
	return &av, nil
}

func validSignUp() *SignUpForm {
	f := NewSignUpForm()
	f.Username = "rafi"
	f.Email = "rafi@uni.edu"
	f.Password = "secret1"
	f.ConfirmPassword = "secret1"
	f.SetPhone("1712345678")
	f.StudentID = "1904001"
	return f
}

func requireValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "want *ValidationError, got %v", err)
	return ve
}

func TestSignUp_Valid(t *testing.T) {
	f := validSignUp()
	req, err := f.Request()
	require.NoError(t, err)
	want := models.SignUpRequest{
		Username: "rafi", Email: "rafi@uni.edu", Password: "secret1",
		Phone: "+8801712345678", StudentID: "1904001",
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestSignUp_ShortPassword(t *testing.T) {
	f := validSignUp()
	f.Password = "abc"
	f.ConfirmPassword = "abc"

	ve := requireValidation(t, f.Validate())
	assert.Equal(t, "Password must be at least 6 characters long", ve.Message)
	assert.Equal(t, MsgPasswordTooShort, ve.Field("password"))
}

func TestSignUp_ChecksInOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *SignUpForm)
		want   string
	}{
		{"username required", func(f *SignUpForm) { f.Username = " " }, MsgRequired},
		{"email required", func(f *SignUpForm) { f.Email = "" }, MsgRequired},
		{"username before password", func(f *SignUpForm) { f.Username = ""; f.Password = "abc" }, MsgRequired},
		{"mismatch wins over length", func(f *SignUpForm) { f.Password = "abc"; f.ConfirmPassword = "abd" }, MsgPasswordMismatch},
		{"phone too short", func(f *SignUpForm) { f.SetPhone("12345") }, MsgPhoneInvalid},
		{"phone letters", func(f *SignUpForm) { f.SetPhone("17123abcde") }, MsgPhoneInvalid},
		{"student id", func(f *SignUpForm) { f.StudentID = "  " }, MsgStudentIDRequired},
		{"username taken", func(f *SignUpForm) { f.username = models.Availability{} }, MsgUsernameTaken},
		{"email taken", func(f *SignUpForm) { f.email = models.Availability{} }, MsgEmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSignUp()
			tt.mutate(f)
			ve := requireValidation(t, f.Validate())
			assert.Equal(t, tt.want, ve.Message)
		})
	}
}

func TestSignUp_RequestWithoutUsernameOrEmail(t *testing.T) {
	f := NewSignUpForm()
	f.Password = "secret1"
	f.ConfirmPassword = "secret1"
	f.SetPhone("1613732227")
	f.StudentID = "S1"

	_, err := f.Request()
	ve := requireValidation(t, err)
	assert.Equal(t, MsgRequired, ve.Field("username"))

	f.Username = "rafi"
	_, err = f.Request()
	ve = requireValidation(t, err)
	assert.Equal(t, MsgRequired, ve.Field("email"))
}

func TestSetPhone_ForcesPrefix(t *testing.T) {
	f := NewSignUpForm()
	assert.Equal(t, "+880", f.Phone)
	assert.Equal(t, MsgPhoneIncomplete, f.PhoneHint())

	f.SetPhone("1613732227")
	assert.Equal(t, "+8801613732227", f.Phone)
	assert.Empty(t, f.PhoneHint())

	f.SetPhone("+880 1613732227")
	assert.Equal(t, "+880 1613732227", f.Phone)
	assert.Empty(t, f.PhoneHint())
}

func TestUsernameSuggestion(t *testing.T) {
	c := &fakeChecker{
		username: models.Availability{Available: false, Suggestion: "bob123"},
		email:    models.Availability{Available: true},
	}
	f := NewSignUpForm()
	f.Username = "bob"

	require.NoError(t, f.CheckAvailability(context.Background(), c))
	assert.Equal(t, []string{"bob"}, c.usernameArg)
	assert.Empty(t, c.emailArg, "no @ yet, email is not checked")

	assert.Equal(t, "Username not available", f.UsernameHint())
	assert.Equal(t, "bob123", f.Suggestion())

	require.True(t, f.ApplySuggestion())
	assert.Equal(t, "bob123", f.Username)
	assert.False(t, f.ApplySuggestion())
}

func TestCheckAvailability_ShortUsernameSkipped(t *testing.T) {
	c := &fakeChecker{email: models.Availability{Available: false}}
	f := NewSignUpForm()
	f.Username = "bo"
	f.Email = "bo@uni.edu"

	require.NoError(t, f.CheckAvailability(context.Background(), c))
	assert.Empty(t, c.usernameArg)
	assert.Empty(t, f.UsernameHint())
	assert.Equal(t, MsgEmailUnavailable, f.EmailHint())
}

func TestCheckAvailability_ErrorKeepsPreviousAnswer(t *testing.T) {
	c := &fakeChecker{err: errors.New("offline")}
	f := NewSignUpForm()
	f.Username = "rafi"

	assert.Error(t, f.CheckAvailability(context.Background(), c))
	assert.Equal(t, MsgUsernameAvailable, f.UsernameHint())
}

func validItem() ItemForm {
	return ItemForm{
		Title:       "Desk lamp",
		Description: "Works fine",
		CategoryID:  "electronics",
		Condition:   "good",
		Type:        "free",
		LocationID:  "3",
		Phone:       "+8801712345678",
	}
}

func TestItemForm_SwapNeedsSwapWith(t *testing.T) {
	f := validItem()
	f.Type = "swap"

	_, err := f.Payload(time.Now())
	ve := requireValidation(t, err)
	assert.Equal(t, MsgRequiredFields, ve.Message)
	assert.Equal(t, MsgSwapWith, ve.Field("swapWith"))
	assert.Len(t, ve.Fields, 1)

	f.SwapWith = "a calculator"
	p, err := f.Payload(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "a calculator", p.SwapWith)
}

func TestItemForm_RequiredFields(t *testing.T) {
	ve := requireValidation(t, ItemForm{}.Validate())
	assert.Equal(t, MsgRequiredFields, ve.Message)
	for _, name := range []string{"title", "description", "categoryId", "condition", "type", "locationId", "phone"} {
		assert.Equal(t, MsgRequired, ve.Field(name), name)
	}
}

func TestItemForm_BadOptions(t *testing.T) {
	f := validItem()
	f.Type = "sell"
	f.CategoryID = "toys"
	f.LocationID = "hall"

	ve := requireValidation(t, f.Validate())
	assert.Equal(t, MsgItemType, ve.Field("type"))
	assert.Equal(t, MsgUnknownOption, ve.Field("categoryId"))
	assert.Equal(t, MsgNumber, ve.Field("locationId"))
}

func TestItemForm_Payload(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	f := validItem()
	f.Type = "FREE"
	f.SwapWith = "ignored for free items"
	f.ImageURL = "/api/uploads/files/lamp.png"

	p, err := f.Payload(now)
	require.NoError(t, err)
	want := models.ItemPayload{
		ItemName:      "Desk lamp",
		Description:   "Works fine",
		ItemType:      models.ItemTypeFree,
		ItemCondition: "good",
		Status:        "available",
		Phone:         "+8801712345678",
		PostDate:      "2026-03-04",
		CategoryID:    2,
		LocationID:    3,
		Post: models.ItemPost{
			ImageUrls: "/api/uploads/files/lamp.png",
			PostTime:  "2026-03-04T10:30:00Z",
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func validTuition() TuitionForm {
	return TuitionForm{
		Subject:    "Physics",
		Class:      "HSC",
		LocationID: "1",
		Salary:     "5000",
		DaysWeek:   "3",
		Phone:      "+8801712345678",
	}
}

func TestTuitionForm_SwapDetails(t *testing.T) {
	f := validTuition()
	f.CanSwap = true

	ve := requireValidation(t, f.Validate())
	assert.Equal(t, "Please provide swap details when offering tuition exchange", ve.Message)

	f.SwapDetails = "Need chemistry help"
	p, err := f.Payload()
	require.NoError(t, err)
	require.NotNil(t, p.SwapDetails)
	assert.Equal(t, "Need chemistry help", *p.SwapDetails)
}

func TestTuitionForm_Payload(t *testing.T) {
	p, err := validTuition().Payload()
	require.NoError(t, err)

	assert.Equal(t, "Tarek Huda Hall", p.Location)
	assert.Equal(t, 5000.0, p.Salary)
	assert.Equal(t, 3, p.DaysWeek)
	assert.Equal(t, models.TuitionAvailable, p.Status)
	assert.Equal(t, TutorBoth, p.TutorPreference)
	assert.Nil(t, p.AddressURL)
	assert.Nil(t, p.SwapDetails)
}

func TestTuitionForm_UnknownLocationSentAsIs(t *testing.T) {
	f := validTuition()
	f.LocationID = "Agrabad"
	p, err := f.Payload()
	require.NoError(t, err)
	assert.Equal(t, "Agrabad", p.Location)
}

func TestTuitionForm_NumbersAndRequired(t *testing.T) {
	f := validTuition()
	f.Salary = "lots"
	f.Subject = ""
	ve := requireValidation(t, f.Validate())
	assert.Equal(t, MsgRequiredFields, ve.Message)
	assert.Equal(t, MsgNumber, ve.Field("salary"))
	assert.Equal(t, MsgRequired, ve.Field("subject"))
}
