package plot

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// coordPrinter renders axis coordinates with thousands separators,
// e.g. 1234.5 as "1,234.5".
var coordPrinter = message.NewPrinter(language.English)

func formatCoord(v float64) string {
	return coordPrinter.Sprintf("%.1f", v)
}
