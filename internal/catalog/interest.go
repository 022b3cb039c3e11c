package catalog

import (
	"encoding/json"
	"log"
	"sort"
	"strings"

	"github.com/boltdb/bolt"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/misc"
)

type Interest struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

func GetInterestTx(tx *bolt.Tx, cfg *config.Config, id string) *Interest {
	var in Interest
	if misc.GetTxJson(tx, cfg.Bucket.Interest, id, &in) == nil && in.Id != "" {
		return &in
	}
	return nil
}

func GetAllInterests(db *bolt.DB, cfg *config.Config) []*Interest {
	out := []*Interest{}
	if err := db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, cfg.Bucket.Interest).ForEach(func(k, v []byte) error {
			var in Interest
			if err := json.Unmarshal(v, &in); err != nil {
				log.Println("error when unmarshalling interest", string(v))
				return nil
			}
			out = append(out, &in)
			return nil
		})
	}); err != nil {
		log.Println("Err getting all interests", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CreateInterest rejects blank names and case-insensitive duplicates.
func CreateInterest(db *bolt.DB, cfg *config.Config, name string, createdAt int64) (*Interest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInterestName
	}

	in := &Interest{Name: name, CreatedAt: createdAt}
	err := db.Update(func(tx *bolt.Tx) (err error) {
		var exists bool
		misc.GetBucket(tx, cfg.Bucket.Interest).ForEach(func(k, v []byte) error {
			var cur Interest
			if json.Unmarshal(v, &cur) == nil && strings.EqualFold(cur.Name, name) {
				exists = true
			}
			return nil
		})
		if exists {
			return ErrInterestExists
		}

		if in.Id, err = misc.GetNextIndex(tx, cfg.Bucket.Interest); err != nil {
			return err
		}
		return misc.PutTxJson(tx, cfg.Bucket.Interest, in.Id, in)
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}
