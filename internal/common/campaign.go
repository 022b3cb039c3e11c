package common

import (
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/misc"
)

const (
	GenderFemale = 0
	GenderMale   = 1
	GenderAll    = 2
)

var (
	ErrBadGoal          = errors.New("goal must be one of Brand Awareness, Sales or Engagement")
	ErrCampaignNotFound = errors.New("Campaign not found.")

	goals = []string{"Brand Awareness", "Sales", "Engagement"}
)

func IsValidGoal(goal string) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}

type AgeRange struct {
	MinAge int `json:"MinAge"`
	MaxAge int `json:"MaxAge"`
}

type TargetAudience struct {
	Age      *AgeRange `json:"age,omitempty"`
	Gender   int       `json:"gender"`
	Location string    `json:"location,omitempty"`
}

type Timeline struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Campaign is the brand-owned document everything else hangs off of.
// BrandName and InterestName are snapshots captured at write time; they
// are not re-synced when the referenced entities change.
type Campaign struct {
	Id        string `json:"campaignsId"`
	BrandId   string `json:"brandId"`
	BrandName string `json:"brandName"`

	ProductOrServiceName string `json:"productOrServiceName"`
	Description          string `json:"description,omitempty"`

	TargetAudience *TargetAudience `json:"targetAudience,omitempty"`

	InterestIds  []string `json:"interestId,omitempty"`
	InterestName string   `json:"interestName,omitempty"`

	Goal   string  `json:"goal"`
	Budget float64 `json:"budget"`

	Timeline *Timeline `json:"timeline,omitempty"`

	Images        []string `json:"images,omitempty"`
	CreativeBrief []string `json:"creativeBrief,omitempty"`

	AdditionalNotes string `json:"additionalNotes,omitempty"`

	// Mirror of the application ledger's applicant list length,
	// refreshed by every successful apply (write-through, not
	// transactional)
	ApplicantCount int `json:"applicantCount"`

	// Derived from the timeline, never settable on its own
	Active bool `json:"isActive"`

	CreatedAt int64 `json:"createdAt"`
}

// IsActive reports whether the campaign is still running: no end date,
// or an end date that hasn't passed yet.
func (cmp *Campaign) IsActive(now time.Time) bool {
	if cmp.Timeline == nil || cmp.Timeline.EndDate == nil {
		return true
	}
	return !cmp.Timeline.EndDate.Before(now)
}

// SetActivity recomputes the stored flag. Call it on every write that
// touches the timeline.
func (cmp *Campaign) SetActivity(now time.Time) {
	cmp.Active = cmp.IsActive(now)
}

func GetCampaignTx(tx *bolt.Tx, cfg *config.Config, id string) *Campaign {
	var cmp Campaign
	if misc.GetTxJson(tx, cfg.Bucket.Campaign, id, &cmp) == nil && cmp.Id != "" {
		return &cmp
	}
	return nil
}

func GetCampaign(db *bolt.DB, cfg *config.Config, id string) (cmp *Campaign) {
	db.View(func(tx *bolt.Tx) error {
		cmp = GetCampaignTx(tx, cfg, id)
		return nil
	})
	return
}

// GetAllCampaigns returns every campaign, newest first. An empty
// brandId means no owner filter.
func GetAllCampaigns(db *bolt.DB, cfg *config.Config, brandId string) []*Campaign {
	out := []*Campaign{}
	if err := db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, cfg.Bucket.Campaign).ForEach(func(k, v []byte) error {
			var cmp Campaign
			if err := json.Unmarshal(v, &cmp); err != nil {
				log.Println("error when unmarshalling campaign", string(v))
				return nil
			}
			if brandId == "" || cmp.BrandId == brandId {
				out = append(out, &cmp)
			}
			return nil
		})
	}); err != nil {
		log.Println("Err getting all campaigns", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}
