package auth

import "crypto/subtle"

// Outcome is the result of a credential check.
type Outcome string

const (
	Granted       Outcome = "granted"
	Denied        Outcome = "denied"
	Misconfigured Outcome = "misconfigured"
)

// Credentials are the expected username and password.
type Credentials struct {
	Username string
	Password string
}

// Configured reports whether both secrets are set.
func (c Credentials) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// Check compares the supplied credentials with expected by exact string equality.
// Missing secrets are reported as Misconfigured, never as Granted or Denied.
func Check(expected Credentials, username, password string) Outcome {
	if !expected.Configured() {
		return Misconfigured
	}
	userOK := subtle.ConstantTimeCompare([]byte(expected.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(expected.Password), []byte(password)) == 1
	if userOK && passOK {
		return Granted
	}
	return Denied
}

// Message returns the user-facing text of an outcome.
func (o Outcome) Message() string {
	switch o {
	case Granted:
		return "login successful"
	case Denied:
		return "invalid username or password"
	case Misconfigured:
		return "DASHBOARD_USERNAME/DASHBOARD_PASSWORD are not configured"
	}
	return string(o)
}
