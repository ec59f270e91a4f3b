package letters

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode normalization form C, so that precomposed
// and decomposed input produce the same letters.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
