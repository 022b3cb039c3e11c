package common

import (
	"errors"
	"sort"
	"strings"

	"github.com/boltdb/bolt"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/misc"
)

var (
	ErrAlreadyApplied  = errors.New("Influencer has already applied to this campaign")
	ErrNeverApplied    = errors.New("Influencer has not applied to this campaign")
	ErrAlreadyApproved = errors.New("Campaign already has an approved influencer")
	ErrNoApplications  = errors.New("No applications found for this campaign")
)

type Applicant struct {
	InfluencerId string `json:"influencerId"`
	Name         string `json:"name"`
}

// Application is the one-per-campaign ledger of who applied and who was
// approved. Applicant names are snapshots taken at apply time.
type Application struct {
	CampaignId string       `json:"campaignId"`
	Applicants []*Applicant `json:"applicants"`

	// At most one entry, filled exactly once
	Approved *Applicant `json:"approved,omitempty"`

	CreatedAt int64 `json:"createdAt"`
}

func (app *Application) Find(influencerId string) *Applicant {
	for _, a := range app.Applicants {
		if a.InfluencerId == influencerId {
			return a
		}
	}
	return nil
}

// AddApplicant appends the applicant, keeping the list set-like on
// influencer id. A re-application either errors (strict) or is silently
// absorbed; in neither case does a second entry appear. Returns whether
// the list actually grew.
func (app *Application) AddApplicant(influencerId, name string, strict bool) (bool, error) {
	if app.Find(influencerId) != nil {
		if strict {
			return false, ErrAlreadyApplied
		}
		return false, nil
	}
	app.Applicants = append(app.Applicants, &Applicant{InfluencerId: influencerId, Name: name})
	return true, nil
}

// Approve fills the one-shot approval slot from the applicant list.
func (app *Application) Approve(influencerId string) (*Applicant, error) {
	if app.Approved != nil {
		return nil, ErrAlreadyApproved
	}
	a := app.Find(influencerId)
	if a == nil {
		return nil, ErrNeverApplied
	}
	app.Approved = &Applicant{InfluencerId: a.InfluencerId, Name: a.Name}
	return app.Approved, nil
}

type ApplicantQuery struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search,omitempty"`

	SortField string `json:"sortField,omitempty"`
	// 1 sorts descending, anything else ascending
	SortOrder int `json:"sortOrder,omitempty"`
}

type ApplicantView struct {
	InfluencerId string `json:"influencerId"`
	Name         string `json:"name"`
	Approved     bool   `json:"approved"`
}

type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type ApplicantPage struct {
	Meta        PageMeta         `json:"meta"`
	Influencers []*ApplicantView `json:"influencers"`

	// Raw applicant list length, pre-filter
	ApplicantCount int  `json:"applicantCount"`
	HasApproved    bool `json:"hasApproved"`
}

// Page filters, sorts and paginates the applicant list. It works on a
// nil receiver so a campaign nobody applied to yet yields an empty page
// instead of an error.
func (app *Application) Page(q *ApplicantQuery) *ApplicantPage {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	out := &ApplicantPage{
		Meta:        PageMeta{Page: page, Limit: limit},
		Influencers: []*ApplicantView{},
	}
	if app == nil {
		return out
	}

	out.ApplicantCount = len(app.Applicants)
	out.HasApproved = app.Approved != nil

	matched := make([]*Applicant, 0, len(app.Applicants))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, a := range app.Applicants {
		if search == "" || strings.Contains(strings.ToLower(a.Name), search) {
			matched = append(matched, a)
		}
	}

	if q.SortField != "" {
		desc := q.SortOrder == 1
		sort.SliceStable(matched, func(i, j int) bool {
			var less bool
			switch q.SortField {
			case "influencerId":
				less = matched[i].InfluencerId < matched[j].InfluencerId
			default:
				less = strings.ToLower(matched[i].Name) < strings.ToLower(matched[j].Name)
			}
			if desc {
				return !less
			}
			return less
		})
	}

	total := len(matched)
	out.Meta.Total = total
	out.Meta.TotalPages = (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	for _, a := range matched[start:end] {
		out.Influencers = append(out.Influencers, &ApplicantView{
			InfluencerId: a.InfluencerId,
			Name:         a.Name,
			Approved:     app.Approved != nil && app.Approved.InfluencerId == a.InfluencerId,
		})
	}
	return out
}

func GetApplicationTx(tx *bolt.Tx, cfg *config.Config, campaignId string) *Application {
	var app Application
	if misc.GetTxJson(tx, cfg.Bucket.Application, campaignId, &app) == nil && app.CampaignId != "" {
		return &app
	}
	return nil
}

func GetApplication(db *bolt.DB, cfg *config.Config, campaignId string) (app *Application) {
	db.View(func(tx *bolt.Tx) error {
		app = GetApplicationTx(tx, cfg, campaignId)
		return nil
	})
	return
}
