package common

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Optional campaign fields arrive either as structured JSON values or
// as JSON-encoded strings inside multipart forms, and the original
// clients were sloppy about types. Each field gets exactly one parser
// with one contract: coerce what's usable, drop what isn't, never
// reject the request over it.

func coerceInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}

// ParseTargetAudience reads {age: {MinAge, MaxAge}, gender, location}.
// Non-numeric ages are ignored, an out-of-range gender falls back to
// "all".
func ParseTargetAudience(raw string) *TargetAudience {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var in struct {
		Age struct {
			MinAge interface{} `json:"MinAge"`
			MaxAge interface{} `json:"MaxAge"`
		} `json:"age"`
		Gender   interface{} `json:"gender"`
		Location string      `json:"location"`
	}
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil
	}

	ta := &TargetAudience{Gender: GenderAll, Location: in.Location}
	if g, ok := coerceInt(in.Gender); ok && g >= GenderFemale && g <= GenderAll {
		ta.Gender = g
	}

	var age AgeRange
	var hasAge bool
	if min, ok := coerceInt(in.Age.MinAge); ok {
		age.MinAge, hasAge = min, true
	}
	if max, ok := coerceInt(in.Age.MaxAge); ok {
		age.MaxAge, hasAge = max, true
	}
	if hasAge {
		ta.Age = &age
	}
	return ta
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseTimeline reads {startDate, endDate}. Unparseable dates are
// dropped; a timeline with no usable date at all counts as unset.
func ParseTimeline(raw string) *Timeline {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var in struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil
	}

	tl := &Timeline{
		StartDate: parseDate(in.StartDate),
		EndDate:   parseDate(in.EndDate),
	}
	if tl.StartDate == nil && tl.EndDate == nil {
		return nil
	}
	return tl
}

// ParseInterestIds reads a JSON array of catalog ids, falling back to a
// comma-separated list.
func ParseInterestIds(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		ids = strings.Split(raw, ",")
	}

	out := ids[:0]
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
