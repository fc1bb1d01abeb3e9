package registry

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	directionPrefix = regexp.MustCompile(`(inbound|outbound)\.`)
	tokenSeparators = regexp.MustCompile(`[\s.]+`)
)

// GenerateName derives a display name from a dotted path, e.g.
// "outbound.salesforce.create_lead" becomes "Salesforce Create Lead".
// Only the first "inbound." or "outbound." occurrence is removed.
func GenerateName(path string) string {
	if loc := directionPrefix.FindStringIndex(path); loc != nil {
		path = path[:loc[0]] + path[loc[1]:]
	}
	path = strings.ReplaceAll(path, "_", " ")

	var tokens []string
	for _, token := range tokenSeparators.Split(path, -1) {
		if token == "" {
			continue
		}
		tokens = append(tokens, capitalize(token))
	}
	return strings.Join(tokens, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// classify matches on substrings, so any path mentioning "inbound" is inbound.
func classify(path string) ModuleType {
	switch {
	case strings.Contains(path, string(TypeInbound)):
		return TypeInbound
	case strings.Contains(path, string(TypeOutbound)):
		return TypeOutbound
	default:
		return TypeNone
	}
}
