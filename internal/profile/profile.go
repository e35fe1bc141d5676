// Package profile reads the signed-in account from a Chromium profile.
package profile

import (
	"encoding/json"
	"net/url"
	"os"
	"strings"
)

// AvatarService renders a letter avatar for a name.
const AvatarService = "https://ui-avatars.com/api/"

// Info describes the signed-in account.
type Info struct {
	Email     string
	Name      string
	AvatarURL string
}

type preferencesFile struct {
	AccountInfo []struct {
		Email string `json:"email"`
	} `json:"account_info"`
}

// Lookup reads the Preferences file at path and returns the first account
// with an email. It reports false when there is none, including when the
// file is missing or unreadable.
func Lookup(path string) (Info, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, false
	}

	var prefs preferencesFile
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Info{}, false
	}

	for _, account := range prefs.AccountInfo {
		if email := strings.TrimSpace(account.Email); email != "" {
			return FromEmail(email), true
		}
	}
	return Info{}, false
}

// FromEmail builds Info using the local part of email as the display name.
func FromEmail(email string) Info {
	name, _, _ := strings.Cut(email, "@")
	return Info{
		Email:     email,
		Name:      name,
		AvatarURL: AvatarURL(name),
	}
}

// AvatarURL returns the letter-avatar image URL for name.
func AvatarURL(name string) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("background", "2563eb")
	q.Set("color", "fff")
	return AvatarService + "?" + q.Encode()
}
