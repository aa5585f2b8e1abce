package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/randhunt"
)

// summary renders the plain-text result report.
func summary(result *randhunt.Result) string {
	var b strings.Builder

	b.WriteString("--- Result ---\n")
	fmt.Fprintf(&b, "Tries: %d\n", result.Tries)

	for _, h := range result.Hits {
		fmt.Fprintf(&b, "%s hits: %d (%s%%)\n", h.Chars, h.Hits, percent(h.Hits, result.Tries))
	}

	fmt.Fprintf(&b, "Total hits: %d (%s%%)\n", result.HitsTotal, percent(result.HitsTotal, result.Tries))

	return b.String()
}

// percent formats n/total as a percentage rounded to two decimals, with
// trailing zeros trimmed.
func percent(n, total uint64) string {
	if total == 0 {
		return "0"
	}
	v := float64(n) / float64(total) * 100
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
