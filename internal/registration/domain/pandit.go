package domain

import (
	"strings"

	"github.com/tair/bookmypanditji/internal/validation"
)

// PersonalInfo is the first pandit step
type PersonalInfo struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	DOB          string `json:"dob"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

func (p *PersonalInfo) ContactName() string  { return p.Name }
func (p *PersonalInfo) ContactEmail() string { return p.Email }

func (p *PersonalInfo) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.Required("name", p.Name, "Name")
	if strings.TrimSpace(p.Email) == "" {
		errs.Add("email", "Email is required")
	} else if !validation.IsEmail(p.Email) {
		errs.Add("email", "Email is invalid")
	}
	if strings.TrimSpace(p.Mobile) == "" {
		errs.Add("mobile", "Mobile number is required")
	} else if !validation.IsMobile(p.Mobile) {
		errs.Add("mobile", "Mobile number must be 10 digits")
	}
	errs.Required("dob", p.DOB, "Date of birth")
	errs.Required("address", p.Address, "Address")
	errs.Required("city", p.City, "City")
	errs.Required("state", p.State, "State")
	if strings.TrimSpace(p.Pincode) == "" {
		errs.Add("pincode", "PIN code is required")
	} else if !validation.IsPincode(p.Pincode) {
		errs.Add("pincode", "PIN code must be 6 digits")
	}
	return errs
}

// ProfessionalInfo is the second pandit step
type ProfessionalInfo struct {
	Qualification   string   `json:"qualification"`
	Experience      int      `json:"experience"`
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	Certifications  string   `json:"certifications,omitempty"`
	AboutMe         string   `json:"about_me,omitempty"`
}

func (p *ProfessionalInfo) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.Required("qualification", p.Qualification, "Qualification")
	if p.Experience < 0 {
		errs.Add("experience", "Experience cannot be negative")
	}
	if len(p.Specializations) == 0 {
		errs.Add("specializations", "Select at least one specialization")
	}
	if len(p.Languages) == 0 {
		errs.Add("languages", "Select at least one language")
	}
	return errs
}

// BaseFees are the pandit's own asking prices
type BaseFees struct {
	Regular float64 `json:"regular"`
	Premium float64 `json:"premium"`
}

// ServiceInfo is the third pandit step
type ServiceInfo struct {
	ServiceArea         float64  `json:"service_area"`
	AvailableDays       []string `json:"available_days"`
	AvailableTimeSlots  []string `json:"available_time_slots"`
	CanTravelOutstation bool     `json:"can_travel_outstation"`
	ServiceLocations    []string `json:"service_locations"`
	BaseFees            BaseFees `json:"base_fees"`
}

// Weekdays lists the accepted availability days
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (s *ServiceInfo) Validate() validation.Errors {
	errs := validation.Errors{}
	if s.ServiceArea <= 0 {
		errs.Add("service_area", "Service area must be positive")
	}
	if len(s.AvailableDays) == 0 {
		errs.Add("available_days", "Select at least one day")
	}
	for _, d := range s.AvailableDays {
		if !validation.OneOf(d, Weekdays...) {
			errs.Add("available_days", "Unknown day "+d)
		}
	}
	if len(s.AvailableTimeSlots) == 0 {
		errs.Add("available_time_slots", "Select at least one time slot")
	}
	if len(s.ServiceLocations) == 0 {
		errs.Add("service_locations", "Select at least one service location")
	}
	if s.BaseFees.Regular <= 0 {
		errs.Add("regular_fee", "Regular fee must be positive")
	}
	if s.BaseFees.Premium <= 0 {
		errs.Add("premium_fee", "Premium fee must be positive")
	}
	return errs
}

// BankInfo is the last pandit step
type BankInfo struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	BankName      string `json:"bank_name"`
	Branch        string `json:"branch"`
	UPIID         string `json:"upi_id,omitempty"`
}

func (b *BankInfo) Validate() validation.Errors {
	errs := validation.Errors{}
	errs.Required("account_name", b.AccountName, "Account name")
	errs.Required("account_number", b.AccountNumber, "Account number")
	if strings.TrimSpace(b.IFSCCode) == "" {
		errs.Add("ifsc_code", "IFSC code is required")
	} else if !validation.IsIFSC(b.IFSCCode) {
		errs.Add("ifsc_code", "IFSC code is invalid")
	}
	errs.Required("bank_name", b.BankName, "Bank name")
	errs.Required("branch", b.Branch, "Branch")
	return errs
}

// PanditFlow registers a new pandit
var PanditFlow = &Flow{
	Name: "pandit",
	Steps: []StepDef{
		{Name: "personalInfo", New: func() Step { return &PersonalInfo{} }},
		{Name: "professionalInfo", New: func() Step { return &ProfessionalInfo{} }},
		{Name: "serviceInfo", New: func() Step { return &ServiceInfo{} }},
		{Name: "bankInfo", New: func() Step { return &BankInfo{} }},
	},
}
