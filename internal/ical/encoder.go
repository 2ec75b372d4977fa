// Package ical renders procurement calendar events as an iCalendar
// (RFC 5545) document. Timestamps are emitted as floating local time,
// matching how the exported file is consumed: the calendar application
// interprets them in its own zone.
package ical

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// uidDomain suffixes every event ID to form a globally unique UID.
	uidDomain = "procuroid.app"

	prodID = "-//Procuroid//Calendar Export//EN"

	timestampLayout = "20060102T150405"
	dateLayout      = "2006-01-02"

	defaultHour          = 9
	defaultDurationHours = 1
)

var ErrNoStart = errors.New("event has neither a date nor a precise start")

type Kind string

const (
	KindMeeting  Kind = "meeting"
	KindCall     Kind = "call"
	KindDelivery Kind = "delivery"
)

// Event is the encoder's view of one calendar entry. It is rebuilt from
// order and meeting records on every export and never persisted.
type Event struct {
	ID           string
	Title        string
	Kind         Kind
	Date         string // "2006-01-02", used when PreciseStart is nil
	Time         string // "9:00 AM" or "14:30", best effort
	DurationText string // free text, first integer is the hour count
	Location     string
	Description  string
	OrderID      string
	SupplierName string
	MeetingLink  string
	PreciseStart *time.Time
}

var (
	twelveHourRegex     = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})\s*(AM|PM)\s*$`)
	twentyFourHourRegex = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)
	firstIntegerRegex   = regexp.MustCompile(`\d+`)
)

// ParseTimeOfDay extracts an hour and minute from a textual time of day.
// It tries 12-hour form first ("2:30 PM"), then 24-hour ("14:30"), and
// falls back to 09:00 when neither matches.
func ParseTimeOfDay(s string) (int, int) {
	if m := twelveHourRegex.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])

		isPM := strings.EqualFold(m[3], "PM")
		if hour == 12 && !isPM {
			hour = 0
		} else if isPM && hour != 12 {
			hour += 12
		}

		if hour <= 23 && minute <= 59 {
			return hour, minute
		}
	}

	if m := twentyFourHourRegex.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])

		if hour <= 23 && minute <= 59 {
			return hour, minute
		}
	}

	return defaultHour, 0
}

// ParseDurationHours extracts the first integer from a free-text duration
// ("2 hours" -> 2). Absent or digit-free input yields 1.
func ParseDurationHours(s string) int {
	m := firstIntegerRegex.FindString(s)
	if m == "" {
		return defaultDurationHours
	}

	hours, err := strconv.Atoi(m)
	if err != nil || hours < 0 {
		return defaultDurationHours
	}

	return hours
}

// StartIn resolves the event's start instant in loc. PreciseStart is
// authoritative when set; otherwise Date combined with the parsed Time is
// used. ErrNoStart is returned when no start can be derived at all.
func (e Event) StartIn(loc *time.Location) (time.Time, error) {
	if e.PreciseStart != nil {
		return *e.PreciseStart, nil
	}

	day, err := time.ParseInLocation(dateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, ErrNoStart
	}

	hour, minute := ParseTimeOfDay(e.Time)

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		hour, minute, 0, 0,
		loc,
	), nil
}

// EscapeText escapes a value for embedding in a text property. Backslashes
// are escaped first so the later substitutions never double-escape.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// Encode renders events as a single iCalendar document. Input order is
// preserved and now stamps every event's DTSTAMP. Events whose start cannot
// be resolved (StartIn returns ErrNoStart) are skipped so one malformed
// record never aborts the whole export.
func Encode(events []Event, now time.Time) string {
	return EncodeIn(events, now, time.Local)
}

// EncodeIn is Encode with an explicit location for date/time resolution as
// well as the DTSTAMP, which keeps the output deterministic in tests.
func EncodeIn(events []Event, now time.Time, loc *time.Location) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")

	stamp := now.In(loc).Format(timestampLayout)

	for _, event := range events {
		start, err := event.StartIn(loc)
		if err != nil {
			continue
		}

		end := start.Add(time.Duration(ParseDurationHours(event.DurationText)) * time.Hour)

		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, fmt.Sprintf("UID:%s@%s", event.ID, uidDomain))
		writeLine(&b, "DTSTAMP:"+stamp)
		writeLine(&b, "DTSTART:"+start.Format(timestampLayout))
		writeLine(&b, "DTEND:"+end.Format(timestampLayout))
		writeLine(&b, "SUMMARY:"+EscapeText(event.Title))
		writeLine(&b, "DESCRIPTION:"+EscapeText(event.description()))
		writeLine(&b, "LOCATION:"+EscapeText(event.location()))
		if event.MeetingLink != "" {
			writeLine(&b, "URL:"+event.MeetingLink)
		}
		writeLine(&b, "STATUS:CONFIRMED")
		writeLine(&b, "SEQUENCE:0")
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")

	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

func (e Event) location() string {
	if e.Location == "" {
		return "TBD"
	}
	return e.Location
}

// description returns the explicit description, or synthesizes one from the
// event kind and its cross-reference fields.
func (e Event) description() string {
	if e.Description != "" {
		return e.Description
	}

	var lines []string
	if e.Kind == KindDelivery {
		lines = append(lines, "Delivery for "+e.Title)
	} else {
		lines = append(lines, "Meeting: "+e.Title)
	}

	if e.OrderID != "" {
		lines = append(lines, "Order ID: "+e.OrderID)
	}
	if e.SupplierName != "" {
		lines = append(lines, "Supplier: "+e.SupplierName)
	}
	if e.MeetingLink != "" {
		lines = append(lines, "Meeting Link: "+e.MeetingLink)
	}

	return strings.Join(lines, "\n")
}
