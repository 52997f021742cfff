package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTaka renders an order amount the way the printed reports show it:
// thousand-separated integer Taka, with ".50"-style fractions kept only when
// the upstream price actually carries them. The amount is rounded to whole
// paisa first so a fraction can never round up into a stray "1.00".
func FormatTaka(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	paisa := int64(math.Round(amount * 100))
	whole := paisa / 100
	frac := paisa % 100

	out := sign + "Tk " + formatThousand(whole)
	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	return out
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
