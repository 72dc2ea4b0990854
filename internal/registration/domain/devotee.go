package domain

import (
	"strings"

	"github.com/tair/bookmypanditji/internal/validation"
)

// BasicInfo is the first devotee step
type BasicInfo struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"date_of_birth"`
	TimeOfBirth  string `json:"time_of_birth,omitempty"`
	PlaceOfBirth string `json:"place_of_birth,omitempty"`
}

func (b *BasicInfo) ContactName() string  { return b.Name }
func (b *BasicInfo) ContactEmail() string { return b.Email }

func (b *BasicInfo) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.Required("name", b.Name, "Name")
	if strings.TrimSpace(b.Email) == "" {
		errs.Add("email", "Email is required")
	} else if !validation.IsStrictEmail(b.Email) {
		errs.Add("email", "Invalid email address")
	}
	if strings.TrimSpace(b.Phone) == "" {
		errs.Add("phone", "Phone number is required")
	} else if !validation.IsMobile(b.Phone) {
		errs.Add("phone", "Please enter a valid 10-digit phone number")
	}
	if strings.TrimSpace(b.Gender) == "" {
		errs.Add("gender", "Gender is required")
	} else if !validation.OneOf(b.Gender, "male", "female", "other", "prefer_not_to_say") {
		errs.Add("gender", "Gender is invalid")
	}
	errs.Required("date_of_birth", b.DateOfBirth, "Date of birth")
	return errs
}

// Address is the devotee's postal address
type Address struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

func (a *Address) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.Required("address_line1", a.AddressLine1, "Address")
	errs.Required("city", a.City, "City")
	errs.Required("state", a.State, "State")
	errs.Required("postal_code", a.PostalCode, "Postal code")
	errs.Required("country", a.Country, "Country")
	return errs
}

// FamilyMember is one relative listed by the devotee
type FamilyMember struct {
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// FamilyDetails is the third devotee step
type FamilyDetails struct {
	MaritalStatus   string         `json:"marital_status"`
	SpouseName      string         `json:"spouse_name,omitempty"`
	AnniversaryDate string         `json:"anniversary_date,omitempty"`
	Children        int            `json:"children"`
	FamilyMembers   []FamilyMember `json:"family_members,omitempty"`
}

func (f *FamilyDetails) Validate() validation.Errors {
	errs := validation.Errors{}
	if strings.TrimSpace(f.MaritalStatus) == "" {
		errs.Add("marital_status", "Marital status is required")
	} else if !validation.OneOf(f.MaritalStatus, "single", "married", "divorced", "widowed") {
		errs.Add("marital_status", "Marital status is invalid")
	}
	if f.Children < 0 {
		errs.Add("children", "Cannot be negative")
	}
	return errs
}

// ReligiousPreferences carries optional astrological and family details
type ReligiousPreferences struct {
	Gotra              string   `json:"gotra,omitempty"`
	Nakshatra          string   `json:"nakshatra,omitempty"`
	Rashi              string   `json:"rashi,omitempty"`
	Kuldevi            string   `json:"kuldevi,omitempty"`
	Kuldevta           string   `json:"kuldevta,omitempty"`
	FavoriteFestivals  []string `json:"favorite_festivals,omitempty"`
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`
}

// Validate accepts anything; every field is optional
func (r *ReligiousPreferences) Validate() validation.Errors {
	return validation.Errors{}
}

// NotificationPreferences is the last devotee step
type NotificationPreferences struct {
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	ReminderFrequency  string `json:"reminder_frequency"`
}

func (n *NotificationPreferences) Validate() validation.Errors {
	errs := validation.Errors{}
	if !validation.OneOf(n.ReminderFrequency, "daily", "weekly", "monthly", "only_important") {
		errs.Add("reminder_frequency", "Select how often to be reminded")
	}
	return errs
}

// DevoteeFlow registers a devotee account
var DevoteeFlow = &Flow{
	Name: "devotee",
	Steps: []StepDef{
		{Name: "basicInfo", New: func() Step { return &BasicInfo{} }},
		{Name: "address", New: func() Step { return &Address{} }},
		{Name: "familyDetails", New: func() Step { return &FamilyDetails{} }},
		{Name: "religiousPreferences", New: func() Step { return &ReligiousPreferences{} }},
		{Name: "notificationPreferences", New: func() Step {
			return &NotificationPreferences{EmailNotifications: true, SMSNotifications: true, ReminderFrequency: "weekly"}
		}},
	},
}
