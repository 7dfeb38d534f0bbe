package services

// OutcomeKind tells apart every way an auth operation can end.
type OutcomeKind int

const (
	OutcomeSignedUp OutcomeKind = iota
	OutcomeLoggedIn
	OutcomeUsernameAvailable

	OutcomeEmptyUsername
	OutcomeUsernameTaken
	OutcomeEmptyPassword
	OutcomePasswordMismatch
	OutcomeInvalidForm
	OutcomeUnknownUser
	OutcomeWrongPassword
	OutcomeHashFailure
	OutcomeLoadFailure
	OutcomeSaveFailure
)

var kindNames = map[OutcomeKind]string{
	OutcomeSignedUp:          "signed_up",
	OutcomeLoggedIn:          "logged_in",
	OutcomeUsernameAvailable: "username_available",
	OutcomeEmptyUsername:     "empty_username",
	OutcomeUsernameTaken:     "username_taken",
	OutcomeEmptyPassword:     "empty_password",
	OutcomePasswordMismatch:  "password_mismatch",
	OutcomeInvalidForm:       "invalid_form",
	OutcomeUnknownUser:       "unknown_user",
	OutcomeWrongPassword:     "wrong_password",
	OutcomeHashFailure:       "hash_failure",
	OutcomeLoadFailure:       "load_failure",
	OutcomeSaveFailure:       "save_failure",
}

func (k OutcomeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Outcome is the result of a signup or login attempt. Err holds the
// underlying cause for failures and is meant for logs, not for the screen.
type Outcome struct {
	Kind     OutcomeKind
	Username string
	Err      error
}

// Success reports whether the operation achieved what the user asked for.
func (o Outcome) Success() bool {
	switch o.Kind {
	case OutcomeSignedUp, OutcomeLoggedIn, OutcomeUsernameAvailable:
		return true
	}
	return false
}

// Message renders the outcome for the user. It never includes passwords or
// hashes. Unknown user and wrong password share one message so the screen
// does not reveal which usernames exist.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeSignedUp:
		return "Signup complete. Welcome, '" + o.Username + "'!"
	case OutcomeLoggedIn:
		return "Login successful. Welcome back, '" + o.Username + "'!"
	case OutcomeUsernameAvailable:
		return "Username is available."
	case OutcomeEmptyUsername:
		return "Username must not be empty."
	case OutcomeUsernameTaken:
		return "That username is already taken."
	case OutcomeEmptyPassword:
		return "Password must not be empty."
	case OutcomePasswordMismatch:
		return "Passwords do not match."
	case OutcomeInvalidForm:
		return "Invalid input."
	case OutcomeUnknownUser, OutcomeWrongPassword:
		return "Invalid username or password."
	case OutcomeHashFailure:
		return "Could not secure the password. Please try again."
	case OutcomeLoadFailure:
		return "Could not load the credential store."
	case OutcomeSaveFailure:
		return "Could not save the credential store."
	}
	return "Unexpected error."
}
