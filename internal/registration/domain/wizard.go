// Package domain models the multi-step registration wizards. A Flow is an
// ordered list of steps; a Session records how far one applicant has got.
package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"

	"github.com/tair/bookmypanditji/internal/validation"
)

var (
	ErrSubmitted      = errors.New("registration already submitted")
	ErrFirstStep      = errors.New("already at the first step")
	ErrUnknownFlow    = errors.New("unknown registration flow")
	ErrInvalidPayload = errors.New("step payload is not valid JSON for this step")
	ErrSessionMissing = errors.New("registration session not found")
	ErrSubmitting     = errors.New("registration is already being submitted")
)

// Step is one page of a wizard
type Step interface {
	Validate() validation.Errors
}

// Contact is implemented by the step that identifies the applicant
type Contact interface {
	ContactName() string
	ContactEmail() string
}

// StepDef names a step and allocates its record
type StepDef struct {
	Name string
	New  func() Step
}

// Flow is an ordered wizard
type Flow struct {
	Name  string
	Steps []StepDef
}

// Session is the persisted progress of one applicant through a flow
type Session struct {
	ID             string                     `json:"id"`
	Flow           string                     `json:"flow"`
	Step           int                        `json:"step"`
	StepName       string                     `json:"step_name"`
	TotalSteps     int                        `json:"total_steps"`
	Data           map[string]json.RawMessage `json:"data"`
	Submitted      bool                       `json:"submitted"`
	RegistrationID string                     `json:"registration_id,omitempty"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// Start opens a session at the first step
func (f *Flow) Start(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		Flow:       f.Name,
		StepName:   f.Steps[0].Name,
		TotalSteps: len(f.Steps),
		Data:       map[string]json.RawMessage{},
		UpdatedAt:  now,
	}
}

// IsLast reports whether s is on the final step
func (f *Flow) IsLast(s *Session) bool {
	return s.Step == len(f.Steps)-1
}

// Resume checks that a stored session still fits f. A session from another
// flow, or whose position is outside the step table, is treated as missing.
func (f *Flow) Resume(s *Session) error {
	switch {
	case s.Flow != f.Name:
		return errors.Wrapf(ErrSessionMissing, "session flow %q", s.Flow)
	case s.Step < 0 || s.Step >= len(f.Steps):
		return errors.Wrapf(ErrSessionMissing, "step %d of %d", s.Step, len(f.Steps))
	case s.StepName != f.Steps[s.Step].Name:
		return errors.Wrapf(ErrSessionMissing, "step %d is %q, stored %q", s.Step, f.Steps[s.Step].Name, s.StepName)
	}
	return nil
}

// Next decodes and validates raw for the current step and stores it. On any
// step but the last the session advances; on the last it stays put and ready
// reports that the wizard can be submitted. A failed validation leaves the
// session untouched.
func (f *Flow) Next(s *Session, raw json.RawMessage, now time.Time) (ready bool, err error) {
	if s.Submitted {
		return false, ErrSubmitted
	}
	if err := f.Resume(s); err != nil {
		return false, err
	}

	def := f.Steps[s.Step]
	rec := def.New()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(rec); err != nil {
		return false, errors.Wrap(ErrInvalidPayload, err.Error())
	}
	if err := rec.Validate().Err(); err != nil {
		return false, err
	}

	normalized, err := json.Marshal(rec)
	if err != nil {
		return false, errors.Wrapf(err, "encode %s", def.Name)
	}
	if s.Data == nil {
		s.Data = map[string]json.RawMessage{}
	}
	s.Data[def.Name] = normalized
	s.UpdatedAt = now

	if f.IsLast(s) {
		return true, nil
	}
	s.Step++
	s.StepName = f.Steps[s.Step].Name
	return false, nil
}

// Back returns to the previous step without validation
func (f *Flow) Back(s *Session, now time.Time) error {
	if s.Submitted {
		return ErrSubmitted
	}
	if err := f.Resume(s); err != nil {
		return err
	}
	if s.Step == 0 {
		return ErrFirstStep
	}
	s.Step--
	s.StepName = f.Steps[s.Step].Name
	s.UpdatedAt = now
	return nil
}

// MarkSubmitted closes the session for good
func (s *Session) MarkSubmitted(registrationID string, now time.Time) {
	s.Submitted = true
	s.RegistrationID = registrationID
	s.UpdatedAt = now
}

// Contact returns the applicant's name and email from the first step that
// carries them
func (f *Flow) Contact(s *Session) (name, email string) {
	for _, def := range f.Steps {
		raw, ok := s.Data[def.Name]
		if !ok {
			continue
		}
		rec := def.New()
		c, isContact := rec.(Contact)
		if !isContact {
			continue
		}
		if err := json.Unmarshal(raw, rec); err != nil {
			continue
		}
		return c.ContactName(), c.ContactEmail()
	}
	return "", ""
}

// Flows is the set of known wizards by name
type Flows map[string]*Flow

// Lookup finds a flow by name
func (fs Flows) Lookup(name string) (*Flow, error) {
	f, ok := fs[name]
	if !ok {
		return nil, ErrUnknownFlow
	}
	return f, nil
}

// DefaultFlows returns the pandit and devotee wizards
func DefaultFlows() Flows {
	return Flows{
		PanditFlow.Name:  PanditFlow,
		DevoteeFlow.Name: DevoteeFlow,
	}
}
