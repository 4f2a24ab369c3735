package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatBaht renders an amount with thousand separators and the Baht sign,
// rounding to whole Baht the way the slips display it.
func FormatBaht(amount float64) string {
	sign := ""
	n := int64(math.Round(amount))
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%s THB", sign, formatThousand(n))
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
