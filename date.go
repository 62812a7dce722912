package rates

import "time"

// DateLayout is the provider's wire format for calendar dates, day first,
// not ISO.
const DateLayout = "02.01.2006"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
