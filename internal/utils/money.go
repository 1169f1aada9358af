package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToPaise converts an amount in rupees to paise, the minor unit the
// gateway bills in.
func ToPaise(rupees int64) int64 {
	return rupees * 100
}

// FormatINR renders an integer rupee amount with thousand separators.
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRs %s", sign, formatThousand(amount))
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
