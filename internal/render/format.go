package render

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const displayLayout = "2006/1/2 15:04:05"

// millisThreshold separates epoch seconds from epoch milliseconds.
const millisThreshold = 100_000_000_000

var displayLocale = language.SimplifiedChinese

var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	time.RFC1123Z,
	time.RFC1123,
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp understands the timestamp shapes the backend has been seen
// to send: RFC 3339 with or without fractional seconds, zone-less date-times
// (read as local time), plain dates and Unix epochs in seconds or milliseconds.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
		if epoch >= millisThreshold || epoch <= -millisThreshold {
			return time.UnixMilli(epoch), true
		}
		return time.Unix(epoch, 0), true
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders value in local time, or Placeholder when value is
// absent or cannot be parsed.
func FormatTimestamp(value *string) string {
	if value == nil {
		return Placeholder
	}
	t, ok := ParseTimestamp(*value)
	if !ok {
		return Placeholder
	}
	return FormatTime(t)
}

func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(displayLayout)
}

// FormatCount groups digits the way the display locale does.
func FormatCount(n int) string {
	return message.NewPrinter(displayLocale).Sprintf("%d", n)
}
