package forms

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

const MsgSwapDetails = "Please provide swap details when offering tuition exchange"

// Tutor preferences.
const (
	TutorMale   = "male"
	TutorFemale = "female"
	TutorBoth   = "both"
)

type TuitionForm struct {
	Subject         string
	Class           string
	LocationID      string
	Salary          string
	DaysWeek        string
	Phone           string
	AddressURL      string
	TutorPreference string
	CanSwap         bool
	SwapDetails     string
}

// Validate reports missing or malformed fields first and the swap details
// rule after that.
func (f TuitionForm) Validate() error {
	errs := fieldErrors{}
	errs.required("subject", f.Subject)
	errs.required("clazz", f.Class)
	errs.required("location", f.LocationID)
	errs.required("salary", f.Salary)
	errs.required("daysWeek", f.DaysWeek)
	errs.required("contactPhone", f.Phone)

	if _, ok := errs["salary"]; !ok {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f.Salary), 64); err != nil {
			errs["salary"] = MsgNumber
		}
	}
	if _, ok := errs["daysWeek"]; !ok {
		if _, err := strconv.Atoi(strings.TrimSpace(f.DaysWeek)); err != nil {
			errs["daysWeek"] = MsgNumber
		}
	}
	if err := errs.err(MsgRequiredFields); err != nil {
		return err
	}

	if f.CanSwap && strings.TrimSpace(f.SwapDetails) == "" {
		return &ValidationError{Message: MsgSwapDetails, Fields: map[string]string{"swapDetails": MsgSwapDetails}}
	}
	return nil
}

// Payload validates the form and builds the create/update body. The
// location is sent by name; an unknown id is sent as is.
func (f TuitionForm) Payload() (models.TuitionPayload, error) {
	if err := f.Validate(); err != nil {
		return models.TuitionPayload{}, err
	}
	salary, _ := strconv.ParseFloat(strings.TrimSpace(f.Salary), 64)
	days, _ := strconv.Atoi(strings.TrimSpace(f.DaysWeek))

	pref := strings.ToLower(strings.TrimSpace(f.TutorPreference))
	if pref == "" {
		pref = TutorBoth
	}

	p := models.TuitionPayload{
		Salary:          salary,
		DaysWeek:        days,
		Clazz:           strings.TrimSpace(f.Class),
		Subject:         strings.TrimSpace(f.Subject),
		Status:          models.TuitionAvailable,
		TutorPreference: pref,
		ContactPhone:    strings.TrimSpace(f.Phone),
		Location:        normalize.Location(strings.TrimSpace(f.LocationID)).Name,
		CanSwap:         f.CanSwap,
	}
	if u := strings.TrimSpace(f.AddressURL); u != "" {
		p.AddressURL = &u
	}
	if f.CanSwap {
		d := strings.TrimSpace(f.SwapDetails)
		p.SwapDetails = &d
	}
	return p, nil
}
