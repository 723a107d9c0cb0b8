package models

// Field names one collected booking detail. Fields are collected strictly in
// the configured order; a field is stored only after its validator accepted it.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldDate    Field = "date"
	FieldTime    Field = "time"
	FieldMessage Field = "message"
)

// DefaultFieldOrder is the stock collection order. The engine receives the
// order as a parameter, so deployments can shorten it, but the relative
// date-before-time dependency must hold.
var DefaultFieldOrder = []Field{
	FieldName, FieldEmail, FieldPhone, FieldDate, FieldTime, FieldMessage,
}

// startedKey marks a session with an active booking flow in the flat store
// representation.
const startedKey = "booking_started"

// BookingState is the typed, in-progress set of collected fields for the
// current booking attempt within a session. The Redis store holds it as a
// flat string map; conversion happens only at the store boundary.
type BookingState struct {
	Started bool
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    string
	Message string
}

// Get returns the stored value for a field, empty if not collected yet.
func (s *BookingState) Get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldDate:
		return s.Date
	case FieldTime:
		return s.Time
	case FieldMessage:
		return s.Message
	}
	return ""
}

// Set records a validated, normalized value for a field.
func (s *BookingState) Set(f Field, value string) {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldDate:
		s.Date = value
	case FieldTime:
		s.Time = value
	case FieldMessage:
		s.Message = value
	}
}

// NextField returns the first field in order that has no value yet, and
// whether such a field exists. Gaps left by malformed session data resolve
// to the first absent field, so corrupted state degrades to a re-prompt.
func (s *BookingState) NextField(order []Field) (Field, bool) {
	for _, f := range order {
		if s.Get(f) == "" {
			return f, true
		}
	}
	return "", false
}

// Complete reports whether every field in order has been collected.
func (s *BookingState) Complete(order []Field) bool {
	_, missing := s.NextField(order)
	return !missing
}

// ToMap converts the state into the flat string map stored in Redis.
func (s *BookingState) ToMap() map[string]string {
	m := make(map[string]string)
	if s.Started {
		m[startedKey] = "1"
	}
	for _, f := range DefaultFieldOrder {
		if v := s.Get(f); v != "" {
			m[string(f)] = v
		}
	}
	return m
}

// StateFromMap rebuilds a BookingState from the flat store representation.
// Unknown keys are ignored.
func StateFromMap(m map[string]string) BookingState {
	var s BookingState
	s.Started = m[startedKey] == "1"
	for _, f := range DefaultFieldOrder {
		if v, ok := m[string(f)]; ok {
			s.Set(f, v)
		}
	}
	return s
}
