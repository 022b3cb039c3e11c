package common

import (
	"reflect"
	"testing"
)

func TestParseTargetAudience(t *testing.T) {
	ta := ParseTargetAudience(`{"age":{"MinAge":18,"MaxAge":34},"gender":1,"location":"Mumbai"}`)
	if ta == nil {
		t.Fatal("structured payload should parse")
	}
	if ta.Gender != GenderMale || ta.Location != "Mumbai" {
		t.Fatalf("got %+v", ta)
	}
	if ta.Age == nil || ta.Age.MinAge != 18 || ta.Age.MaxAge != 34 {
		t.Fatalf("age: %+v", ta.Age)
	}

	// string-typed numbers from sloppy clients still coerce
	ta = ParseTargetAudience(`{"age":{"MinAge":"21","MaxAge":"40"},"gender":"0"}`)
	if ta == nil || ta.Gender != GenderFemale || ta.Age == nil || ta.Age.MinAge != 21 {
		t.Fatalf("coerced payload: %+v", ta)
	}

	// junk ages are dropped, junk gender falls back to all
	ta = ParseTargetAudience(`{"age":{"MinAge":"abc","MaxAge":null},"gender":7}`)
	if ta == nil {
		t.Fatal("junk fields should not reject the whole value")
	}
	if ta.Age != nil {
		t.Fatalf("unusable ages should leave age unset, got %+v", ta.Age)
	}
	if ta.Gender != GenderAll {
		t.Fatalf("out-of-range gender should fall back to all, got %d", ta.Gender)
	}

	if ta = ParseTargetAudience(""); ta != nil {
		t.Fatalf("empty input: %+v", ta)
	}
	if ta = ParseTargetAudience("not json"); ta != nil {
		t.Fatalf("malformed input: %+v", ta)
	}
}

func TestParseTimeline(t *testing.T) {
	tl := ParseTimeline(`{"startDate":"2026-06-01","endDate":"2026-07-01T00:00:00Z"}`)
	if tl == nil || tl.StartDate == nil || tl.EndDate == nil {
		t.Fatalf("both layouts should parse: %+v", tl)
	}
	if tl.StartDate.Day() != 1 || tl.EndDate.Month() != 7 {
		t.Fatalf("dates off: %v, %v", tl.StartDate, tl.EndDate)
	}

	tl = ParseTimeline(`{"startDate":"06/01/2026","endDate":""}`)
	if tl != nil {
		t.Fatalf("no usable date means unset, got %+v", tl)
	}

	tl = ParseTimeline(`{"endDate":"2026-07-01"}`)
	if tl == nil || tl.StartDate != nil || tl.EndDate == nil {
		t.Fatalf("end-only timeline: %+v", tl)
	}

	if tl = ParseTimeline(""); tl != nil {
		t.Fatalf("empty input: %+v", tl)
	}
}

func TestParseInterestIds(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`["1","2","3"]`, []string{"1", "2", "3"}},
		{`1, 2 ,3`, []string{"1", "2", "3"}},
		{`["1","","  "]`, []string{"1"}},
		{` , , `, nil},
		{``, nil},
	}
	for _, c := range cases {
		if got := ParseInterestIds(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseInterestIds(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}
