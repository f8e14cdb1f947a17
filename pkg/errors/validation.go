package errors

import "unicode"

// maxNameLength bounds table and field names accepted from input files.
const maxNameLength = 256

// ValidateName checks a table or field name read from external input.
// kind is used in the message ("table", "field").
//
// Rules:
//   - No empty names
//   - No control characters (a newline would split a DOT statement)
//   - Maximum length of 256 characters
//
// Characters that are merely unsafe in DOT (quotes, colons, angle brackets)
// are accepted and passed through unescaped.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "%s name too long (max %d characters)", kind, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name %q contains control characters", kind, name)
		}
	}

	return nil
}
