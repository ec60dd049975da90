package models

// TuitionStatus is the lifecycle state of a tuition offer.
type TuitionStatus string

const (
	TuitionAvailable TuitionStatus = "available"
	TuitionTaken     TuitionStatus = "taken"
	TuitionCompleted TuitionStatus = "completed"
)

type Tuition struct {
	TuitionID       int64         `json:"tuitionId"`
	Subject         string        `json:"subject"`
	Clazz           string        `json:"clazz"`
	Salary          float64       `json:"salary"`
	DaysWeek        int           `json:"daysWeek"`
	Status          TuitionStatus `json:"tStatus"`
	Location        string        `json:"location,omitempty"`
	ContactPhone    string        `json:"contactPhone"`
	TutorPreference string        `json:"tutorPreference,omitempty"`
	AddressURL      string        `json:"addressUrl,omitempty"`
	CanSwap         bool          `json:"canSwap"`
	SwapDetails     string        `json:"swapDetails,omitempty"`
	CreatedAt       string        `json:"createdAt,omitempty"`
	User            *UserSummary  `json:"user,omitempty"`
}

// TuitionPayload is the create/update body for a tuition offer.
type TuitionPayload struct {
	Salary          float64       `json:"salary"`
	DaysWeek        int           `json:"daysWeek"`
	Clazz           string        `json:"clazz"`
	Subject         string        `json:"subject"`
	Status          TuitionStatus `json:"tStatus"`
	TutorPreference string        `json:"tutorPreference"`
	ContactPhone    string        `json:"contactPhone"`
	AddressURL      *string       `json:"addressUrl"`
	Location        string        `json:"location"`
	CanSwap         bool          `json:"canSwap"`
	SwapDetails     *string       `json:"swapDetails"`
}
