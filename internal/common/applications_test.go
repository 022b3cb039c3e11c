package common

import (
	"fmt"
	"testing"
)

func TestAddApplicant(t *testing.T) {
	app := &Application{CampaignId: "cmp-1"}

	grew, err := app.AddApplicant("inf-1", "Alice", true)
	if err != nil || !grew {
		t.Fatalf("first apply: grew = %v, err = %v", grew, err)
	}
	if len(app.Applicants) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(app.Applicants))
	}

	// strict mode rejects the duplicate
	if _, err = app.AddApplicant("inf-1", "Alice", true); err != ErrAlreadyApplied {
		t.Fatalf("strict duplicate: expected ErrAlreadyApplied, got %v", err)
	}
	if len(app.Applicants) != 1 {
		t.Fatalf("duplicate grew the list to %d", len(app.Applicants))
	}

	// lenient mode absorbs it silently
	grew, err = app.AddApplicant("inf-1", "Alice", false)
	if err != nil || grew {
		t.Fatalf("lenient duplicate: grew = %v, err = %v", grew, err)
	}
	if len(app.Applicants) != 1 {
		t.Fatalf("lenient duplicate grew the list to %d", len(app.Applicants))
	}

	if grew, _ = app.AddApplicant("inf-2", "Bob", true); !grew {
		t.Fatal("second influencer should be added")
	}
	if len(app.Applicants) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(app.Applicants))
	}
}

func TestApprove(t *testing.T) {
	app := &Application{CampaignId: "cmp-1"}
	app.AddApplicant("inf-1", "Alice", true)
	app.AddApplicant("inf-2", "Bob", true)

	if _, err := app.Approve("inf-3"); err != ErrNeverApplied {
		t.Fatalf("approving a non-applicant: expected ErrNeverApplied, got %v", err)
	}

	a, err := app.Approve("inf-2")
	if err != nil {
		t.Fatal(err)
	}
	if a.InfluencerId != "inf-2" || a.Name != "Bob" {
		t.Fatalf("unexpected approval: %+v", a)
	}

	// the slot fills exactly once, even for the same influencer
	if _, err = app.Approve("inf-2"); err != ErrAlreadyApproved {
		t.Fatalf("second approve: expected ErrAlreadyApproved, got %v", err)
	}
	if _, err = app.Approve("inf-1"); err != ErrAlreadyApproved {
		t.Fatalf("approving another after the slot filled: expected ErrAlreadyApproved, got %v", err)
	}
}

func TestPage(t *testing.T) {
	app := &Application{CampaignId: "cmp-1"}
	for i := 1; i <= 25; i++ {
		app.AddApplicant(fmt.Sprintf("inf-%02d", i), fmt.Sprintf("Creator %02d", i), true)
	}
	app.Approve("inf-07")

	p := app.Page(&ApplicantQuery{Page: 3, Limit: 10, SortField: "influencerId"})
	if p.Meta.Total != 25 || p.Meta.TotalPages != 3 {
		t.Fatalf("meta: %+v", p.Meta)
	}
	if len(p.Influencers) != 5 {
		t.Fatalf("page 3 should hold the last 5 applicants, got %d", len(p.Influencers))
	}
	if p.Influencers[0].InfluencerId != "inf-21" || p.Influencers[4].InfluencerId != "inf-25" {
		t.Fatalf("page 3 window is wrong: %s .. %s",
			p.Influencers[0].InfluencerId, p.Influencers[4].InfluencerId)
	}
	if p.ApplicantCount != 25 || !p.HasApproved {
		t.Fatalf("applicantCount = %d, hasApproved = %v", p.ApplicantCount, p.HasApproved)
	}

	// the approved flag rides on the matching row only
	p = app.Page(&ApplicantQuery{Page: 1, Limit: 25})
	var flagged int
	for _, v := range p.Influencers {
		if v.Approved {
			flagged++
			if v.InfluencerId != "inf-07" {
				t.Fatalf("wrong row flagged approved: %s", v.InfluencerId)
			}
		}
	}
	if flagged != 1 {
		t.Fatalf("expected exactly 1 approved row, got %d", flagged)
	}
}

func TestPageSearchAndSort(t *testing.T) {
	app := &Application{CampaignId: "cmp-1"}
	app.AddApplicant("inf-1", "Zelda Fan", true)
	app.AddApplicant("inf-2", "beauty guru", true)
	app.AddApplicant("inf-3", "Beauty Blogger", true)

	p := app.Page(&ApplicantQuery{Page: 1, Limit: 10, Search: "BEAUTY", SortField: "name"})
	if p.Meta.Total != 2 {
		t.Fatalf("search should match 2, got %d", p.Meta.Total)
	}
	if p.Influencers[0].Name != "Beauty Blogger" || p.Influencers[1].Name != "beauty guru" {
		t.Fatalf("case-insensitive name sort is off: %s, %s",
			p.Influencers[0].Name, p.Influencers[1].Name)
	}

	// the unfiltered count still reflects the whole list
	if p.ApplicantCount != 3 {
		t.Fatalf("applicantCount should ignore the filter, got %d", p.ApplicantCount)
	}

	p = app.Page(&ApplicantQuery{Page: 1, Limit: 10, SortField: "name", SortOrder: 1})
	if p.Influencers[0].Name != "Zelda Fan" {
		t.Fatalf("descending sort should lead with Zelda Fan, got %s", p.Influencers[0].Name)
	}
}

func TestPageNilApplication(t *testing.T) {
	var app *Application

	p := app.Page(&ApplicantQuery{Page: 1, Limit: 10})
	if p == nil {
		t.Fatal("nil application should still page")
	}
	if p.Meta.Total != 0 || p.Meta.TotalPages != 0 {
		t.Fatalf("meta: %+v", p.Meta)
	}
	if p.Influencers == nil || len(p.Influencers) != 0 {
		t.Fatalf("expected an empty, non-nil list, got %#v", p.Influencers)
	}
	if p.HasApproved {
		t.Fatal("nothing can be approved on an empty ledger")
	}
}

func TestPageOutOfRange(t *testing.T) {
	app := &Application{CampaignId: "cmp-1"}
	app.AddApplicant("inf-1", "Alice", true)

	p := app.Page(&ApplicantQuery{Page: 9, Limit: 10})
	if len(p.Influencers) != 0 {
		t.Fatalf("page past the end should be empty, got %d rows", len(p.Influencers))
	}
	if p.Meta.Total != 1 || p.Meta.TotalPages != 1 {
		t.Fatalf("meta: %+v", p.Meta)
	}
}
