package catalog

import (
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/misc"
)

// AudienceRange is a follower-count bracket an influencer can declare,
// e.g. "1k - 10k".
type AudienceRange struct {
	Range string `json:"range"`
}

func formatLabel(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%dM", n/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprintf("%d", n)
}

// RangeLabels builds the decade ladder "1 - 1k", "1k - 10k", ... and
// caps it with an open-ended "10M+".
func RangeLabels() []string {
	labels := []string{}
	min, max := 1, 1000
	for min < 10000000 {
		labels = append(labels, formatLabel(min)+" - "+formatLabel(max))
		min = max
		max *= 10
	}
	return append(labels, "10M+")
}

// SeedAudienceRanges upserts the generated ladder, so running it on
// every startup is safe.
func SeedAudienceRanges(db *bolt.DB, cfg *config.Config) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, label := range RangeLabels() {
			if err := misc.PutTxJson(tx, cfg.Bucket.Audience, label, &AudienceRange{Range: label}); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetAudienceRanges returns the brackets in ladder order, skipping any
// label missing from the store.
func GetAudienceRanges(db *bolt.DB, cfg *config.Config) []*AudienceRange {
	out := []*AudienceRange{}
	db.View(func(tx *bolt.Tx) error {
		b := misc.GetBucket(tx, cfg.Bucket.Audience)
		for _, label := range RangeLabels() {
			if v := b.Get([]byte(label)); v != nil {
				out = append(out, &AudienceRange{Range: label})
			}
		}
		return nil
	})
	return out
}
