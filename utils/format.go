package utils

import (
	"fmt"

	"glowstudio/config"
)

// FormatPrice renders a price in minor currency units with the studio currency symbol.
func FormatPrice(price int) string {
	return fmt.Sprintf("%d %s", price, config.AppConfig.StudioCurrency)
}

// FormatDuration renders a duration in minutes as "30 min", "1 h" or "1 h 30 min".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", mins)
	case mins == 0:
		return fmt.Sprintf("%d h", hours)
	default:
		return fmt.Sprintf("%d h %d min", hours, mins)
	}
}
