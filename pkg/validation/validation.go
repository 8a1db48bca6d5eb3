// Package validation provides checksum validators for well-known
// identifier formats. Each validator is a pure predicate over a string,
// shaped to drop straight into registry.SetValidatorFunc.
//
// Hyphens and spaces are treated as formatting and stripped before the
// checksum runs, so "0-306-40615-2" and "0306406152" are equally valid.
package validation

import "strings"

// ISBN10 reports whether code is a valid ISBN-10: ten characters, nine
// digits plus a final digit or X check character, with a weighted sum
// divisible by 11.
func ISBN10(code string) bool {
	s := strip(code)
	if len(s) != 10 {
		return false
	}
	sum := 0
	for i := 0; i < 10; i++ {
		var v int
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case (c == 'X' || c == 'x') && i == 9:
			v = 10
		default:
			return false
		}
		sum += (10 - i) * v
	}
	return sum%11 == 0
}

// ISBN13 reports whether code is a valid ISBN-13: thirteen digits with an
// alternating 1/3-weighted sum divisible by 10.
func ISBN13(code string) bool {
	s := strip(code)
	if len(s) != 13 {
		return false
	}
	sum := 0
	for i := 0; i < 13; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		v := int(c - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}

// ORCID reports whether code is a valid ORCID iD: sixteen characters,
// fifteen digits plus a final digit or X check character computed per
// ISO 7064 mod 11-2. The canonical hyphenated form
// ("0000-0002-1825-0097") and the bare form are both accepted.
func ORCID(code string) bool {
	s := strip(code)
	if len(s) != 16 {
		return false
	}
	total := 0
	for i := 0; i < 15; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		total = (total + int(c-'0')) * 2
	}
	check := (12 - total%11) % 11
	switch c := s[15]; {
	case c >= '0' && c <= '9':
		return check == int(c-'0')
	case c == 'X' || c == 'x':
		return check == 10
	}
	return false
}

// ByName looks up a validator by its conventional name ("isbn10",
// "isbn13", "orcid"). Used by callers wiring validators from
// configuration.
func ByName(name string) (func(string) bool, bool) {
	switch strings.ToLower(name) {
	case "isbn10", "isbn-10":
		return ISBN10, true
	case "isbn13", "isbn-13":
		return ISBN13, true
	case "orcid":
		return ORCID, true
	}
	return nil, false
}

func strip(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for i := 0; i < len(code); i++ {
		if c := code[i]; c != '-' && c != ' ' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
