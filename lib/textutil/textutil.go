package textutil

import (
	"regexp"
	"strings"
)

var capitalPrefixRegex = regexp.MustCompile(`^[A-Z][a-z][A-Z]`)

// FixLastNameCasing converts an all-caps surname to capitalized form,
// preserving multi-capital prefixes like "Mc" or "La".
func FixLastNameCasing(name string) string {
	if name == "" {
		return name
	}

	start := 1
	if capitalPrefixRegex.MatchString(name) {
		start = 3
	}
	return name[:start] + strings.ToLower(name[start:])
}

// negation of the characters the bioguide XML is allowed to contain
var invalidXMLCharRegex = regexp.MustCompile(
	`[^a-zA-Z0-9\s~` + "`" + `!@#$%^&*()_+=:{}[;<,>.?/\\\-\]"']`)

// CleanXML strips every byte outside the allow-list of punctuation,
// alphanumeric, and whitespace characters. Some historical bioguide
// documents carry stray control bytes that break strict parsers.
func CleanXML(text string) string {
	return invalidXMLCharRegex.ReplaceAllString(text, "")
}

var (
	suffixRegex   = regexp.MustCompile(`,? (Jr\.?|Sr\.?|IV|I{1,3})`)
	nicknameRegex = regexp.MustCompile(` \(([\w\. ]+)\)`)
)

// ParsedFirstName is the raw "firstnames" field of a bioguide document
// split into its components.
type ParsedFirstName struct {
	First    string
	Nickname string
	Suffix   string
}

// ParseFirstName extracts the generational suffix and parenthetical
// nickname out of a raw first-name field. The suffix is stripped first,
// then the nickname; whatever remains is the first name. The order
// matters: a nickname can contain periods but never a generational
// token, so stripping the suffix first keeps both extractions simple.
func ParseFirstName(raw string) ParsedFirstName {
	parsed := ParsedFirstName{}

	if m := suffixRegex.FindStringSubmatch(raw); m != nil {
		parsed.Suffix = m[1]
		raw = suffixRegex.ReplaceAllString(raw, "")
	}
	if m := nicknameRegex.FindStringSubmatch(raw); m != nil {
		parsed.Nickname = m[1]
		raw = nicknameRegex.ReplaceAllString(raw, "")
	}

	parsed.First = strings.TrimSpace(raw)
	return parsed
}
