package state

// Screen identifies which top-level view is active.
type Screen int

const (
	// ScreenRegistration is the account creation form (the initial screen)
	ScreenRegistration Screen = iota
	// ScreenLogin is the sign-in form
	ScreenLogin
	// ScreenDashboard lists the signed-in user's tasks
	ScreenDashboard
)

// String returns a human readable screen name
func (s Screen) String() string {
	switch s {
	case ScreenRegistration:
		return "registration"
	case ScreenLogin:
		return "login"
	case ScreenDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Event is something that can move the UI between screens.
type Event int

const (
	// EventRegistered fires after an account was created
	EventRegistered Event = iota
	// EventShowLogin is the user asking for the login form
	EventShowLogin
	// EventShowRegistration is the user asking for the registration form
	EventShowRegistration
	// EventLoggedIn fires after credentials were accepted
	EventLoggedIn
	// EventLoggedOut ends the dashboard session
	EventLoggedOut
)

// String returns a human readable event name
func (e Event) String() string {
	switch e {
	case EventRegistered:
		return "registered"
	case EventShowLogin:
		return "show_login"
	case EventShowRegistration:
		return "show_registration"
	case EventLoggedIn:
		return "logged_in"
	case EventLoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

// transitions is the complete screen graph. Pairs not listed are ignored.
var transitions = map[Screen]map[Event]Screen{
	ScreenRegistration: {
		EventRegistered: ScreenLogin,
		EventShowLogin:  ScreenLogin,
	},
	ScreenLogin: {
		EventLoggedIn:         ScreenDashboard,
		EventShowRegistration: ScreenRegistration,
	},
	ScreenDashboard: {
		EventLoggedOut: ScreenLogin,
	},
}

// Next returns the screen that follows current when event occurs.
// ok is false, and current is returned unchanged, for undefined pairs.
func Next(current Screen, event Event) (next Screen, ok bool) {
	next, ok = transitions[current][event]
	if !ok {
		return current, false
	}
	return next, true
}
