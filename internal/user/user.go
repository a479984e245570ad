// Package user resolves the operating-system account running taskdesk.
package user

import (
	"os"
	"os/user"
	"strings"
)

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER / USERNAME environment variables - for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	if currentUser, err := user.Current(); err == nil && currentUser.Username != "" {
		return stripDomain(currentUser.Username)
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if username := os.Getenv(key); username != "" {
			return stripDomain(username)
		}
	}
	return "unknown"
}

// DefaultUsername is the account name offered on the login screen and used
// by CLI commands when --user is omitted. Unlike GetCurrentUsername it never
// invents a placeholder: an empty result means "ask the user".
func DefaultUsername() string {
	name := GetCurrentUsername()
	if name == "unknown" {
		return ""
	}
	return name
}

// stripDomain turns DOMAIN\name into name
func stripDomain(username string) string {
	if i := strings.LastIndex(username, `\`); i >= 0 {
		return username[i+1:]
	}
	return username
}
