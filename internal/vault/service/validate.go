package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field limits. Lengths count characters, not bytes.
const (
	maxGroupNameLen   = 512
	maxDescriptionLen = 2048
	maxServiceNameLen = 512
	maxLoginLen       = 128
	maxSecretLen      = 1024

	minAccountPasswordLen = 8
	maxAccountPasswordLen = 128
	maxUsernameLen        = 64
	maxEmailLen           = 254
)

var (
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	phoneRe    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// normalize trims and lower-cases a stored text field.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func checkLen(field, v string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(v)
	switch {
	case n < minLen && minLen == 1:
		return validationf("%s must not be empty", field)
	case n < minLen:
		return validationf("%s must be at least %d characters", field, minLen)
	case n > maxLen:
		return validationf("%s must be at most %d characters, got %d", field, maxLen, n)
	}
	return nil
}

func validateGroupName(name string) error {
	return checkLen("group name", name, 1, maxGroupNameLen)
}

func validateDescription(desc string) error {
	return checkLen("description", desc, 0, maxDescriptionLen)
}

func validateServiceName(s string) error {
	return checkLen("service name", s, 1, maxServiceNameLen)
}

func validateLogin(s string) error {
	return checkLen("login", s, 1, maxLoginLen)
}

func validateSecret(s string) error {
	return checkLen("secret", s, 1, maxSecretLen)
}

func validateEmail(email string) error {
	if len(email) > maxEmailLen || !emailRe.MatchString(email) {
		return validationf("%q is not a valid email address", email)
	}
	return nil
}

// validateUsername allows letters and digits only, and not a leading digit.
func validateUsername(username string) error {
	if err := checkLen("username", username, 1, maxUsernameLen); err != nil {
		return err
	}
	if !usernameRe.MatchString(username) {
		return validationf("username %q must contain only letters and digits and start with a letter", username)
	}
	return nil
}

// validateAccountPassword rejects passwords made only of letters or only of
// digits.
func validateAccountPassword(password string) error {
	if err := checkLen("password", password, minAccountPasswordLen, maxAccountPasswordLen); err != nil {
		return err
	}

	onlyLetters, onlyDigits := true, true
	for _, r := range password {
		if !unicode.IsLetter(r) {
			onlyLetters = false
		}
		if !unicode.IsDigit(r) {
			onlyDigits = false
		}
	}
	if onlyLetters || onlyDigits {
		return validationf("password must not consist only of letters or only of digits")
	}
	return nil
}

// validatePhone accepts an optional leading + and 7 to 15 digits. Empty is
// allowed since the phone is optional.
func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(phone) {
		return validationf("%q is not a valid phone number", phone)
	}
	return nil
}
