// Package algo is the drill library: small, pure, self-contained functions
// over strings, integer slices, and nothing else. Every function is stateless;
// preconditions that callers can violate surface as explicit errors rather
// than silent wrong answers.
package algo

import (
	"strings"
	"unicode"
)

// ReverseString returns s with its runes in reverse order.
//
// Postcondition: ReverseString(ReverseString(s)) == s.
func ReverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// CheckPalindrome reports whether s reads the same forwards and backwards.
// The comparison is exact: case-sensitive, no normalization.
func CheckPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// IsPalindromeNormalized reports whether s is a palindrome after dropping
// every non-alphanumeric rune and folding case. Uses a two-pointer scan from
// both ends.
func IsPalindromeNormalized(s string) bool {
	runes := []rune(s)
	i, j := 0, len(runes)-1
	for i < j {
		for i < j && !isAlphanumeric(runes[i]) {
			i++
		}
		for i < j && !isAlphanumeric(runes[j]) {
			j--
		}
		if unicode.ToLower(runes[i]) != unicode.ToLower(runes[j]) {
			return false
		}
		i++
		j--
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ReverseWords reverses the order of space-separated words in s. Tokens are
// split on single spaces and rejoined with single spaces, so consecutive
// delimiters produce empty tokens that are preserved literally.
func ReverseWords(s string) string {
	words := strings.Split(s, " ")
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

// AreAnagrams reports whether a and b contain the same runes with the same
// multiplicities. A length mismatch short-circuits to false. Counting uses a
// full rune-frequency map, so any input is well-defined.
func AreAnagrams(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	counts := make(map[rune]int, len(ra))
	for _, r := range ra {
		counts[r]++
	}
	for _, r := range rb {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}
	return true
}
