package utils

import (
	"math"
	"strconv"
)

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// FormatThousands renders a whole currency amount with comma grouping,
// e.g. 1312500 -> "1,312,500".
func FormatThousands(f float64) string {
	s := strconv.FormatInt(int64(math.Round(f)), 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
