package domain

import "fmt"

// Preferences is the per-user settings record. It is read and written
// wholesale; there is no partial update.
type Preferences struct {
	Notifications bool   `json:"notifications"`
	EmailUpdates  bool   `json:"emailUpdates"`
	SaveHistory   bool   `json:"saveHistory"`
	DarkMode      bool   `json:"darkMode"`
	Currency      string `json:"currency"`
	Language      string `json:"language"`
}

// The closed option sets the settings screen offers.
var (
	SupportedCurrencies = []string{"INR", "USD", "EUR"}
	SupportedLanguages  = []string{"English", "Tamil", "Hindi"}
)

// DefaultPreferences returns the settings a user starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: true,
		EmailUpdates:  false,
		SaveHistory:   true,
		DarkMode:      false,
		Currency:      "INR",
		Language:      "English",
	}
}

// Validate checks the enum fields against their closed option sets.
func (p Preferences) Validate() error {
	if !contains(SupportedCurrencies, p.Currency) {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, p.Currency)
	}
	if !contains(SupportedLanguages, p.Language) {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, p.Language)
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
