package common

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/boltdb/bolt"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/misc"
)

var (
	ErrContractNotFound = errors.New("Contract not found")
	ErrNoContracts      = errors.New("No contracts found for the given Brand and Influencer")
	ErrNoTimeline       = errors.New("Timeline not found for campaign")
)

type PaymentTerm struct {
	PaymentMethod string `json:"paymentMethod"`
	PaymentTerms  int    `json:"paymentTerms"`
}

// Contract is a snapshot document. Names and the timeline are copied
// from the referenced entities at issue time; later edits to the
// campaign do not propagate here.
type Contract struct {
	Id string `json:"contractId"`

	BrandId      string `json:"brandId"`
	InfluencerId string `json:"influencerId"`
	CampaignId   string `json:"campaignId"`

	BrandName      string `json:"brandName"`
	InfluencerName string `json:"influencerName"`

	// Opaque strings, never parsed
	EffectiveDate string `json:"effectiveDate"`
	FeeAmount     string `json:"feeAmount"`

	DeliverableDescription string `json:"deliverableDescription"`

	Term     *PaymentTerm `json:"term"`
	Timeline *Timeline    `json:"timeline"`

	Accepted bool `json:"accepted"`

	CreatedAt int64 `json:"createdAt"`
}

// Accept flips the acceptance flag. Accepting twice is a no-op, not an
// error. Reports whether the call changed anything.
func (ct *Contract) Accept() bool {
	if ct.Accepted {
		return false
	}
	ct.Accepted = true
	return true
}

func GetContractTx(tx *bolt.Tx, cfg *config.Config, id string) *Contract {
	var ct Contract
	if misc.GetTxJson(tx, cfg.Bucket.Contract, id, &ct) == nil && ct.Id != "" {
		return &ct
	}
	return nil
}

func GetContract(db *bolt.DB, cfg *config.Config, id string) (ct *Contract) {
	db.View(func(tx *bolt.Tx) error {
		ct = GetContractTx(tx, cfg, id)
		return nil
	})
	return
}

// GetContractsByPair returns every persisted contract between the brand
// and the influencer.
func GetContractsByPair(db *bolt.DB, cfg *config.Config, brandId, influencerId string) []*Contract {
	out := []*Contract{}
	if err := db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, cfg.Bucket.Contract).ForEach(func(k, v []byte) error {
			var ct Contract
			if err := json.Unmarshal(v, &ct); err != nil {
				log.Println("error when unmarshalling contract", string(v))
				return nil
			}
			if ct.BrandId == brandId && ct.InfluencerId == influencerId {
				out = append(out, &ct)
			}
			return nil
		})
	}); err != nil {
		log.Println("Err getting contracts", err)
	}
	return out
}
