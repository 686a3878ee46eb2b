package monetize

import (
	"regexp"
	"strings"
)

// multiplierPattern matches a digit immediately followed by a magnitude suffix
// letter, with no further digits through the end of the string. Anchoring to
// the end means at most one suffix is ever honored per input.
var multiplierPattern = regexp.MustCompile(`(?i)\d(k|m|b|t)[^\d]*$`)

// multiplierExponents maps a magnitude suffix to its power-of-ten exponent.
var multiplierExponents = map[string]int{
	"K": 3,
	"M": 6,
	"B": 9,
	"T": 12,
}

// ExtractMultiplier returns the power-of-ten exponent of a trailing magnitude
// suffix (K/M/B/T, case-insensitive), or 0 when no suffix is present.
func ExtractMultiplier(input string) int {
	match := multiplierPattern.FindStringSubmatch(input)
	if match == nil {
		return 0
	}
	return multiplierExponents[strings.ToUpper(match[1])]
}
