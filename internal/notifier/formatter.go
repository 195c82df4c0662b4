package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// bandEmoji maps each valuation band to a traffic-light marker.
func bandEmoji(b model.Band) string {
	switch b {
	case model.BandSignificantlyOvervalued:
		return "🔴"
	case model.BandModeratelyOvervalued:
		return "🟠"
	case model.BandFairValue:
		return "🟡"
	case model.BandModeratelyUndervalued:
		return "🟢"
	default:
		return "🔵"
	}
}

// FormatRefreshReport formats per-country assessments into a Telegram
// message, most expensive market first.
func FormatRefreshReport(assessments []model.Assessment, fetchedAt time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Buffett Indicator</b> | %s\n\n", fetchedAt.Format("2006-01-02")))

	if len(assessments) == 0 {
		b.WriteString("No data available.\n")
		return b.String()
	}

	for _, a := range assessments {
		b.WriteString(fmt.Sprintf("%s <b>%s</b>: %.2f%% (%d)\n", bandEmoji(a.Band), a.Country, a.Percent, a.Year))
		b.WriteString(fmt.Sprintf("    %s, %+.1f vs its mean of %.1f%%\n", a.Band, a.DeltaMean, a.Mean))
	}

	warned := false
	for _, a := range assessments {
		if a.WarningMsg == "" {
			continue
		}
		if !warned {
			b.WriteString("\n")
			warned = true
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", a.Country, a.WarningMsg))
	}

	return b.String()
}

// FormatCountries lists the supported markets.
func FormatCountries() string {
	var b strings.Builder
	b.WriteString("🌍 <b>Supported countries</b>\n\n")
	for _, c := range model.SupportedCountries {
		b.WriteString(fmt.Sprintf("%s (%s)\n", c.Name, c.ISO3))
	}
	return b.String()
}

// FormatRefreshFailure formats a failed refresh for delivery.
func FormatRefreshFailure(err error) string {
	return fmt.Sprintf("❌ <b>Refresh failed</b>\n\n%v", err)
}

// FormatHelp lists the available bot commands.
func FormatHelp() string {
	var b strings.Builder
	b.WriteString("🤖 <b>Commands</b>\n\n")
	b.WriteString("/latest - latest indicator values\n")
	b.WriteString("/refresh - fetch fresh data now\n")
	b.WriteString("/countries - supported countries\n")
	b.WriteString("/help - this message\n")
	return b.String()
}
