package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-faster/errors"

	"github.com/tair/bookmypanditji/internal/validation"
)

var now = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

const (
	personal     = `{"name":"Ravi Joshi","email":"ravi@example.com","mobile":"9876543210","dob":"1980-02-01","address":"4 Temple St","city":"Pune","state":"MH","pincode":"411001"}`
	professional = `{"qualification":"Acharya","experience":12,"specializations":["Vivah"],"languages":["Hindi","Marathi"]}`
	service      = `{"service_area":25,"available_days":["Monday","Sunday"],"available_time_slots":["Morning (7AM-11AM)"],"service_locations":["Pune"],"base_fees":{"regular":1500,"premium":2500}}`
	bank         = `{"account_name":"Ravi Joshi","account_number":"1234567890","ifsc_code":"SBIN0001234","bank_name":"SBI","branch":"Camp"}`
)

func TestPanditFlowHappyPath(t *testing.T) {
	s := PanditFlow.Start("s1", now)
	for i, raw := range []string{personal, professional, service} {
		ready, err := PanditFlow.Next(s, json.RawMessage(raw), now)
		if err != nil || ready {
			t.Fatalf("step %d: ready=%v err=%v", i, ready, err)
		}
	}
	if s.StepName != "bankInfo" {
		t.Fatalf("at %s", s.StepName)
	}
	ready, err := PanditFlow.Next(s, json.RawMessage(bank), now)
	if err != nil || !ready {
		t.Fatalf("last step: ready=%v err=%v", ready, err)
	}
	if s.Step != 3 || len(s.Data) != 4 {
		t.Fatalf("session %+v", s)
	}

	name, email := PanditFlow.Contact(s)
	if name != "Ravi Joshi" || email != "ravi@example.com" {
		t.Fatalf("contact %q %q", name, email)
	}

	s.MarkSubmitted("r1", now)
	if _, err := PanditFlow.Next(s, json.RawMessage(bank), now); !errors.Is(err, ErrSubmitted) {
		t.Fatalf("next after submit: %v", err)
	}
	if err := PanditFlow.Back(s, now); !errors.Is(err, ErrSubmitted) {
		t.Fatalf("back after submit: %v", err)
	}
}

func TestInvalidStepDoesNotAdvance(t *testing.T) {
	s := PanditFlow.Start("s2", now)
	_, err := PanditFlow.Next(s, json.RawMessage(`{"name":"A","email":"nope","mobile":"12345","pincode":"12"}`), now)
	fields, ok := validation.AsErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	want := map[string]string{
		"email":   "Email is invalid",
		"mobile":  "Mobile number must be 10 digits",
		"pincode": "PIN code must be 6 digits",
		"city":    "City is required",
	}
	for f, msg := range want {
		if fields[f] != msg {
			t.Errorf("%s = %q, want %q", f, fields[f], msg)
		}
	}
	if s.Step != 0 || len(s.Data) != 0 {
		t.Fatalf("session moved: %+v", s)
	}
}

func TestBackIsUnguarded(t *testing.T) {
	s := PanditFlow.Start("s3", now)
	if err := PanditFlow.Back(s, now); !errors.Is(err, ErrFirstStep) {
		t.Fatalf("expected ErrFirstStep, got %v", err)
	}
	if _, err := PanditFlow.Next(s, json.RawMessage(personal), now); err != nil {
		t.Fatal(err)
	}
	if err := PanditFlow.Back(s, now); err != nil || s.Step != 0 {
		t.Fatalf("back: step=%d err=%v", s.Step, err)
	}
	if _, ok := s.Data["personalInfo"]; !ok {
		t.Fatal("going back must keep entered data")
	}
}

func TestUnknownFieldsRejected(t *testing.T) {
	s := PanditFlow.Start("s4", now)
	_, err := PanditFlow.Next(s, json.RawMessage(`{"nickname":"x"}`), now)
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestStepValidation(t *testing.T) {
	cases := []struct {
		name  string
		step  Step
		field string
		msg   string
	}{
		{"ifsc", &BankInfo{AccountName: "a", AccountNumber: "1", IFSCCode: "SBIN1001234", BankName: "b", Branch: "c"}, "ifsc_code", "IFSC code is invalid"},
		{"fees", &ServiceInfo{ServiceArea: 1, AvailableDays: []string{"Monday"}, AvailableTimeSlots: []string{"x"}, ServiceLocations: []string{"y"}, BaseFees: BaseFees{Regular: 1}}, "premium_fee", "Premium fee must be positive"},
		{"area", &ServiceInfo{}, "service_area", "Service area must be positive"},
		{"experience", &ProfessionalInfo{Qualification: "x", Experience: -1, Specializations: []string{"a"}, Languages: []string{"b"}}, "experience", "Experience cannot be negative"},
		{"devotee email", &BasicInfo{Name: "a", Email: "a@b", Phone: "9876543210", Gender: "male", DateOfBirth: "1990-01-01"}, "email", "Invalid email address"},
		{"devotee phone", &BasicInfo{Name: "a", Email: "a@b.in", Phone: "98765", Gender: "male", DateOfBirth: "1990-01-01"}, "phone", "Please enter a valid 10-digit phone number"},
		{"postal", &Address{AddressLine1: "a", City: "b", State: "c", Country: "India"}, "postal_code", "Postal code is required"},
		{"children", &FamilyDetails{MaritalStatus: "single", Children: -2}, "children", "Cannot be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.step.Validate()
			if errs[tc.field] != tc.msg {
				t.Fatalf("%s = %q, want %q (all: %v)", tc.field, errs[tc.field], tc.msg, errs)
			}
		})
	}
}

func TestDevoteeDefaultsApply(t *testing.T) {
	s := DevoteeFlow.Start("d1", now)
	s.Step = 4
	s.StepName = "notificationPreferences"
	ready, err := DevoteeFlow.Next(s, json.RawMessage(`{"push_notifications":true}`), now)
	if err != nil || !ready {
		t.Fatalf("ready=%v err=%v", ready, err)
	}
	var prefs NotificationPreferences
	if err := json.Unmarshal(s.Data["notificationPreferences"], &prefs); err != nil {
		t.Fatal(err)
	}
	if !prefs.EmailNotifications || prefs.ReminderFrequency != "weekly" || !prefs.PushNotifications {
		t.Fatalf("prefs %+v", prefs)
	}
}

func TestStoredSessionOutsideFlowIsMissing(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"step past the end", `{"id":"s1","flow":"pandit","step":9,"step_name":"bankInfo"}`},
		{"negative step", `{"id":"s1","flow":"pandit","step":-1,"step_name":"personalInfo"}`},
		{"renamed step", `{"id":"s1","flow":"pandit","step":1,"step_name":"experience"}`},
		{"other flow", `{"id":"s1","flow":"devotee","step":0,"step_name":"basicInfo"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			if err := json.Unmarshal([]byte(tt.stored), &s); err != nil {
				t.Fatal(err)
			}
			if _, err := PanditFlow.Next(&s, json.RawMessage(`{}`), now); !errors.Is(err, ErrSessionMissing) {
				t.Fatalf("Next: expected ErrSessionMissing, got %v", err)
			}
			if err := PanditFlow.Back(&s, now); !errors.Is(err, ErrSessionMissing) {
				t.Fatalf("Back: expected ErrSessionMissing, got %v", err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	flows := DefaultFlows()
	if f, err := flows.Lookup("devotee"); err != nil || len(f.Steps) != 5 {
		t.Fatalf("devotee: %v", err)
	}
	if _, err := flows.Lookup("astrologer"); !errors.Is(err, ErrUnknownFlow) {
		t.Fatalf("expected ErrUnknownFlow, got %v", err)
	}
}
