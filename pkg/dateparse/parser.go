package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts user-supplied date strings to absolute time.Time values.
// It handles the absolute formats users type for a last menstrual period or
// delivery date, plus relative phrases used when requesting appointments.
type Parser struct {
	location *time.Location
}

// absoluteFormats are tried in order when parsing a date string.
var absoluteFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Dhaka"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseDate converts a date string to a start-of-day time.Time.
// Absolute formats are tried first, then relative phrases like
// "8 weeks ago" or "in 3 days". The baseTime is the reference point
// for relative phrases (usually time.Now()).
func (p *Parser) ParseDate(input string, baseTime time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	for _, layout := range absoluteFormats {
		if t, err := time.ParseInLocation(layout, input, p.location); err == nil {
			return p.startOfDay(t), nil
		}
	}

	lowered := strings.ToLower(input)

	switch lowered {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasSuffix(lowered, " ago") {
		return p.parseAgo(lowered, baseTime)
	}
	if strings.HasPrefix(lowered, "in ") {
		return p.parseInDuration(lowered, baseTime)
	}
	if strings.HasPrefix(lowered, "next ") {
		return p.parseNextWeekday(lowered, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized date %q", input)
}

var durationRe = regexp.MustCompile(`(\d+)\s+(day|days|week|weeks|month|months)`)

// parseAgo handles patterns like "8 weeks ago", "3 days ago", "2 months ago".
// Used for last menstrual period and delivery date inputs.
func (p *Parser) parseAgo(lowered string, baseTime time.Time) (time.Time, error) {
	matches := durationRe.FindStringSubmatch(lowered)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid relative date format: %q", lowered)
	}

	amount, _ := strconv.Atoi(matches[1])
	return p.shift(baseTime, -amount, matches[2])
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(lowered string, baseTime time.Time) (time.Time, error) {
	matches := durationRe.FindStringSubmatch(lowered)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", lowered)
	}

	amount, _ := strconv.Atoi(matches[1])
	return p.shift(baseTime, amount, matches[2])
}

func (p *Parser) shift(baseTime time.Time, amount int, unit string) (time.Time, error) {
	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(lowered string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(lowered, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
