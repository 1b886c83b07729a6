// Package render holds the small presentation helpers shared by the CLI and
// web surfaces.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatSize renders a byte count the way the document views display it:
// bytes below 1 KiB, one decimal for KB and MB, two decimals for GB.
func FormatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	kb := float64(bytes) / 1024
	if kb < 1024 {
		return fmt.Sprintf("%.1f KB", kb)
	}
	mb := kb / 1024
	if mb < 1024 {
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.2f GB", mb/1024)
}

// FormatDate renders a timestamp for list display.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// ContrastColor picks a readable text color for a hex background: black on
// light backgrounds (luminance above 0.5), white otherwise. Invalid input
// counts as dark.
func ContrastColor(hexColor string) string {
	if luminance(hexColor) > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}

func luminance(hexColor string) float64 {
	hexColor = strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(hexColor) == 3 {
		hexColor = strings.Repeat(string(hexColor[0]), 2) +
			strings.Repeat(string(hexColor[1]), 2) +
			strings.Repeat(string(hexColor[2]), 2)
	}
	if len(hexColor) != 6 {
		return 0
	}
	value, err := strconv.ParseUint(hexColor, 16, 32)
	if err != nil {
		return 0
	}
	r := float64(value >> 16 & 0xff)
	g := float64(value >> 8 & 0xff)
	b := float64(value & 0xff)
	return (0.299*r + 0.587*g + 0.114*b) / 255
}
