package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/boltdb/bolt"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/misc"
)

var (
	ErrInterestNotFound = errors.New("interest not found")
	ErrInterestName     = errors.New("Interest name is required and must be a non-empty string.")
	ErrInterestExists   = errors.New("This interest already exists.")
)

// Country is an immutable-after-seed lookup row. The same table backs
// two references per person: residence (countryId) and the calling
// code (callingId).
type Country struct {
	Id          string `json:"id"`
	CountryName string `json:"countryName"`
	CallingCode string `json:"callingCode"`
	CountryCode string `json:"countryCode"`
	Flag        string `json:"flag"`
}

func GetCountryTx(tx *bolt.Tx, cfg *config.Config, id string) *Country {
	var cty Country
	if misc.GetTxJson(tx, cfg.Bucket.Country, id, &cty) == nil && cty.Id != "" {
		return &cty
	}
	return nil
}

func GetAllCountries(db *bolt.DB, cfg *config.Config) []*Country {
	out := []*Country{}
	if err := db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, cfg.Bucket.Country).ForEach(func(k, v []byte) error {
			var cty Country
			if err := json.Unmarshal(v, &cty); err != nil {
				log.Println("error when unmarshalling country", string(v))
				return nil
			}
			out = append(out, &cty)
			return nil
		})
	}); err != nil {
		log.Println("Err getting all countries", err)
	}
	return out
}

// SeedCountries loads the country table from the configured data file.
// Rows already present (matched on name) are left untouched so reseeds
// are harmless.
func SeedCountries(db *bolt.DB, cfg *config.Config) error {
	if cfg.CountriesFile == "" {
		return nil
	}

	f, err := os.Open(cfg.CountriesFile)
	if err != nil {
		return err
	}
	defer f.Close()

	var rows []*Country
	if err := json.NewDecoder(f).Decode(&rows); err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		existing := map[string]bool{}
		misc.GetBucket(tx, cfg.Bucket.Country).ForEach(func(k, v []byte) error {
			var cty Country
			if json.Unmarshal(v, &cty) == nil {
				existing[cty.CountryName] = true
			}
			return nil
		})

		for _, row := range rows {
			if existing[row.CountryName] {
				continue
			}
			if row.Id, err = misc.GetNextIndex(tx, cfg.Bucket.Country); err != nil {
				return err
			}
			if err = misc.PutTxJson(tx, cfg.Bucket.Country, row.Id, row); err != nil {
				return err
			}
		}
		return nil
	})
}
