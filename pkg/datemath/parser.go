package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts natural-language date expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	clockRe      = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Normalize converts a natural-language date expression to an absolute instant.
//
// Expressions without a clock time resolve to the end of the matched day.
// If the resolved instant is strictly before baseTime, it is advanced by
// exactly one week. This reproduces the upstream disambiguation heuristic for
// relative expressions like "friday" meaning the one that just passed; it
// applies to absolute past dates too and is kept for compatibility.
//
// Returns ErrUnparsable when no date expression is recognized; the caller
// treats that as "no due date".
func (p *Parser) Normalize(text string, baseTime time.Time) (time.Time, error) {
	res, err := p.Parse(text, baseTime)
	if err != nil {
		return time.Time{}, err
	}

	t := res.AbsoluteTime
	if res.IsAllDay {
		t = p.EndOfDay(t)
	}
	if t.Before(baseTime) {
		t = t.AddDate(0, 0, 7)
	}
	return t, nil
}

// Parse converts a date expression to a ParseResult without applying the
// past-date correction. The baseTime is the reference point for relative
// expressions (usually time.Now()).
func (p *Parser) Parse(text string, baseTime time.Time) (ParseResult, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return ParseResult{}, ErrUnparsable
	}

	// Explicit formats are case-sensitive (RFC3339 requires uppercase T/Z),
	// so they are tried before the expression is lowercased.
	if res, ok := p.parseExplicit(raw); ok {
		return res, nil
	}

	expr := strings.ToLower(raw)

	// Split off an "at <clock>" suffix, e.g. "tomorrow at 5pm".
	dayExpr := expr
	clockExpr := ""
	if idx := strings.LastIndex(expr, " at "); idx > 0 {
		dayExpr = strings.TrimSpace(expr[:idx])
		clockExpr = strings.TrimSpace(expr[idx+4:])
	}

	day, err := p.parseDay(dayExpr, baseTime)
	if err != nil {
		return ParseResult{}, err
	}

	if clockExpr == "" {
		return day, nil
	}

	hour, minute, clockErr := parseClock(clockExpr)
	if clockErr != nil {
		return ParseResult{}, clockErr
	}
	d := day.AbsoluteTime
	withClock := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location)
	return ParseResult{AbsoluteTime: withClock, IsAllDay: false}, nil
}

// parseDay resolves the date part of an expression to a start-of-day instant.
func (p *Parser) parseDay(expr string, baseTime time.Time) (ParseResult, error) {
	switch expr {
	case "today":
		return ParseResult{AbsoluteTime: p.startOfDay(baseTime), IsAllDay: true}, nil
	case "tomorrow":
		return ParseResult{AbsoluteTime: p.startOfDay(baseTime.AddDate(0, 0, 1)), IsAllDay: true}, nil
	case "yesterday":
		return ParseResult{AbsoluteTime: p.startOfDay(baseTime.AddDate(0, 0, -1)), IsAllDay: true}, nil
	}

	// "in 3 days", "in 2 weeks", "in 1 month"
	if m := inDurationRe.FindStringSubmatch(expr); m != nil {
		amount, _ := strconv.Atoi(m[1])
		var t time.Time
		switch {
		case strings.HasPrefix(m[2], "day"):
			t = baseTime.AddDate(0, 0, amount)
		case strings.HasPrefix(m[2], "week"):
			t = baseTime.AddDate(0, 0, amount*7)
		default:
			t = baseTime.AddDate(0, amount, 0)
		}
		return ParseResult{AbsoluteTime: p.startOfDay(t), IsAllDay: true}, nil
	}

	// "next friday" or a bare weekday name
	dayName := strings.TrimPrefix(expr, "next ")
	if wd, ok := weekdays[dayName]; ok {
		daysUntil := int(wd - baseTime.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return ParseResult{AbsoluteTime: p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), IsAllDay: true}, nil
	}

	return ParseResult{}, ErrUnparsable
}

// parseExplicit tries the fixed date layouts against the expression as
// written, preserving case.
func (p *Parser) parseExplicit(expr string) (ParseResult, bool) {
	if t, err := time.Parse(time.RFC3339, expr); err == nil {
		return ParseResult{AbsoluteTime: t.In(p.location), IsAllDay: false}, true
	}
	if t, err := time.ParseInLocation("2006-01-02", expr, p.location); err == nil {
		return ParseResult{AbsoluteTime: t, IsAllDay: true}, true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", expr, p.location); err == nil {
		return ParseResult{AbsoluteTime: t, IsAllDay: false}, true
	}
	return ParseResult{}, false
}

// parseClock parses "5pm", "5:30pm", "17:00" into hour and minute.
func parseClock(expr string) (int, int, error) {
	m := clockRe.FindStringSubmatch(expr)
	if m == nil {
		return 0, 0, ErrUnparsable
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, ErrUnparsable
	}
	return hour, minute, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on the same day as t in the parser's timezone.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}
