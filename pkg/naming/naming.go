// Package naming maps between the three spellings a resource goes by:
// PascalCase type names ("SmsMessages"), snake_case wire fields
// ("sms_messages") and URL path segments.
//
// The functions are pure and stateless. They are inverses only for the
// common case; resources whose path and field names disagree declare an
// explicit resource.Schema instead.
package naming

import (
	"strings"
	"unicode"
)

// Separator joins words in snake_case names.
const Separator = '_'

// Decamelize converts a PascalCase or camelCase word to snake_case.
// A run of capitals counts as one word, so "SMSMessages" and "SmsMessages"
// both become "sms_messages".
func Decamelize(word string) string {
	var result strings.Builder

	runes := []rune(word)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			result.WriteRune(r)

			continue
		}

		if i > 0 {
			prev := runes[i-1]

			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				result.WriteRune(Separator)
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// last capital of an acronym starts the next word
				result.WriteRune(Separator)
			}
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// Camelize converts a snake_case word to PascalCase.
func Camelize(word string) string {
	var result strings.Builder

	segments := strings.FieldsFunc(word, isSeparator)
	for _, segment := range segments {
		runes := []rune(segment)
		runes[0] = unicode.ToUpper(runes[0])
		result.WriteString(string(runes))
	}

	return result.String()
}

// Singularize drops a single trailing "s". Irregular plurals are handled
// by overriding the instance name in the collection schema.
func Singularize(word string) string {
	if len(word) > 1 && strings.HasSuffix(word, "s") {
		return word[:len(word)-1]
	}

	return word
}

func isSeparator(r rune) bool {
	return r == Separator || r == '-'
}
