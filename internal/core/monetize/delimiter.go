package monetize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/centsworth/monetize_app/internal/apperrors"
)

// nonAmountChars matches everything that can never be part of the numeric body
// of an amount: anything other than digits, the three separator characters we
// recognize (period, comma, apostrophe) and the minus sign.
var nonAmountChars = regexp.MustCompile(`[^\d.,'-]`)

// cleanAmount reduces a raw amount string to its numeric body. It extracts the
// sign (a leading or trailing '-' both mean negative), rejects a hyphen
// anywhere else, and strips a lone trailing separator ("12." becomes "12").
func cleanAmount(input string) (string, bool, error) {
	num := nonAmountChars.ReplaceAllString(input, "")

	negative := strings.HasPrefix(num, "-") || strings.HasSuffix(num, "-")
	num = strings.TrimPrefix(num, "-")
	num = strings.TrimSuffix(num, "-")
	if strings.Contains(num, "-") {
		return "", false, fmt.Errorf("hyphen inside amount %q: %w", input, apperrors.ErrInvalidAmount)
	}

	if n := len(num); n > 0 {
		switch num[n-1] {
		case '.', ',', '\'':
			num = num[:n-1]
		}
	}
	return num, negative, nil
}

// splitMajorMinor resolves thousands-separator vs decimal-mark ambiguity and
// splits the cleaned numeric body into whole-unit and fractional digit strings.
// decimalMark is the resolved currency's own decimal mark.
func splitMajorMinor(num string, decimalMark rune) (string, string, error) {
	used := usedSeparators(num)

	switch len(used) {
	case 0:
		return num, "0", nil

	case 1:
		return splitOnSingleSeparator(num, used[0], decimalMark)

	case 2:
		// Positional resolution: the first-appearing separator groups
		// thousands, the second is the decimal mark.
		num = strings.ReplaceAll(num, string(used[0]), "")
		major, minor := splitPair(num, used[1])
		if minor == "" {
			minor = "0"
		}
		return major, minor, nil

	default:
		return "", "", fmt.Errorf("too many separators in %q: %w", num, apperrors.ErrInvalidAmount)
	}
}

// splitOnSingleSeparator handles the ambiguous case of exactly one distinct
// separator character.
func splitOnSingleSeparator(num string, sep, decimalMark rune) (string, string, error) {
	// The currency's own decimal mark is never a thousands separator.
	if sep == decimalMark {
		major, minor := splitPair(num, sep)
		if minor == "" {
			minor = "0"
		}
		return major, minor, nil
	}

	// A separator repeated more than once can only group thousands.
	if strings.Count(num, string(sep)) > 1 {
		return strings.ReplaceAll(num, string(sep), ""), "0", nil
	}

	possibleMajor, possibleMinor := splitPair(num, sep)
	if possibleMajor == "" {
		possibleMajor = "0"
	}
	if possibleMinor == "" {
		possibleMinor = "00"
	}

	switch {
	case len(possibleMinor) != 3:
		// Thousands groups are exactly three digits wide; anything else
		// must be a fractional part.
	case len(possibleMajor) > 3:
		// A major part wider than three digits cannot itself be a single
		// thousands group, so the separator is a decimal mark.
	case sep == '.':
		// A period with a three-digit group and a short major part stays a
		// decimal mark.
	default:
		return possibleMajor + possibleMinor, "0", nil
	}
	return possibleMajor, possibleMinor, nil
}

// splitPair splits num on sep and keeps only the first two fields; digits
// after a second occurrence of sep are discarded.
func splitPair(num string, sep rune) (string, string) {
	parts := strings.Split(num, string(sep))
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// usedSeparators returns the distinct non-digit characters in num, in order of
// first appearance.
func usedSeparators(num string) []rune {
	var used []rune
	for _, r := range num {
		if r >= '0' && r <= '9' {
			continue
		}
		seen := false
		for _, u := range used {
			if u == r {
				seen = true
				break
			}
		}
		if !seen {
			used = append(used, r)
		}
	}
	return used
}
