package domain

// DefaultSessionMins is the session length used when a profile does not
// declare one.
const DefaultSessionMins = 60

type Profile struct {
	UserID               string
	Name                 string
	University           string
	Major                string
	Chronotype           Chronotype
	WorkStyle            WorkStyle
	PreferredSessionMins int
	CalendarWriteEnabled bool
}

// DefaultProfile returns the documented fallback profile for users who
// never completed onboarding.
func DefaultProfile(userID string) *Profile {
	return &Profile{
		UserID:               userID,
		Chronotype:           ChronoBalanced,
		WorkStyle:            StyleMixed,
		PreferredSessionMins: DefaultSessionMins,
	}
}

// SessionMins returns the preferred session length, falling back to the
// default when the stored value is missing or invalid.
func (p *Profile) SessionMins() int {
	if p == nil || p.PreferredSessionMins <= 0 {
		return DefaultSessionMins
	}
	return p.PreferredSessionMins
}
