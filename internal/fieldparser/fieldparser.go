// Package fieldparser recovers contact details from resume text with
// regular expressions. It never fails and never invents a value: every
// non-empty field is a substring of the input.
package fieldparser

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Optional +CC, optional (AAA), then EEE SSSS with space, dot or hyphen separators.
	phonePattern = regexp.MustCompile(`(\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	wholeEmailPattern = regexp.MustCompile(`^` + emailPattern.String() + `$`)
)

// CandidateFields is the pre-fill payload for the application form. Fields
// with no match are empty strings. FirstName, LastName and Address have no
// recognizer and are always empty; they exist so callers can merge the whole
// struct into form state.
type CandidateFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// CandidateMatches lists every match per field, left to right.
type CandidateMatches struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// Parse returns the first email and the first phone number in text.
func Parse(text string) CandidateFields {
	return CandidateFields{
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
	}
}

// ParseAll returns every non-overlapping email and phone match in text.
// The first element of each list is what Parse would pick.
func ParseAll(text string) CandidateMatches {
	return CandidateMatches{
		Emails: allMatches(emailPattern, text),
		Phones: allMatches(phonePattern, text),
	}
}

func allMatches(re *regexp.Regexp, text string) []string {
	found := re.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// IsEmail reports whether s is exactly one email address in the shape Parse recognizes.
func IsEmail(s string) bool {
	return wholeEmailPattern.MatchString(s)
}

// Empty reports whether no field was recognized.
func (f CandidateFields) Empty() bool {
	return f == CandidateFields{}
}

// Matched lists the names of the non-empty fields, for logging.
func (f CandidateFields) Matched() []string {
	var names []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
	} {
		if field.value != "" {
			names = append(names, field.name)
		}
	}
	return names
}
