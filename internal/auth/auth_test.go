package auth

import "testing"

func TestCheck(t *testing.T) {
	expected := Credentials{Username: "admin", Password: "s3cret"}

	tests := []struct {
		name     string
		expected Credentials
		user     string
		pass     string
		want     Outcome
	}{
		{"Granted", expected, "admin", "s3cret", Granted},
		{"WrongPassword", expected, "admin", "nope", Denied},
		{"WrongUser", expected, "Admin", "s3cret", Denied},
		{"EmptyInput", expected, "", "", Denied},
		{"NoUsername", Credentials{Password: "s3cret"}, "", "s3cret", Misconfigured},
		{"NoPassword", Credentials{Username: "admin"}, "admin", "", Misconfigured},
		{"NothingConfigured", Credentials{}, "", "", Misconfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.expected, tt.user, tt.pass); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}
