package server

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/boltdb/bolt"

	"github.com/ipriyanshu25/infuencer/internal/catalog"
	"github.com/ipriyanshu25/infuencer/internal/common"
	"github.com/ipriyanshu25/infuencer/misc"
)

func saveCampaign(tx *bolt.Tx, s *Server, cmp *common.Campaign) error {
	return misc.PutTxJson(tx, s.Cfg.Bucket.Campaign, cmp.Id, cmp)
}

func saveApplication(tx *bolt.Tx, s *Server, app *common.Application) error {
	return misc.PutTxJson(tx, s.Cfg.Bucket.Application, app.CampaignId, app)
}

func saveContract(tx *bolt.Tx, s *Server, ct *common.Contract) error {
	return misc.PutTxJson(tx, s.Cfg.Bucket.Contract, ct.Id, ct)
}

// resolveInterests validates every referenced interest id against the
// catalog and hands back the comma-joined display names. The first
// unknown id aborts the whole write.
func (s *Server) resolveInterests(ids []string) (string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, id := range ids {
			in := catalog.GetInterestTx(tx, s.Cfg, id)
			if in == nil {
				return catalog.ErrInterestNotFound
			}
			names = append(names, in.Name)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(names, ", "), nil
}

// rawString unquotes a JSON field that may arrive either as a
// structured value or as a JSON-encoded string, so the typed field
// parsers see the same payload regardless of transport.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
	}
	return string(raw)
}

func coerceFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("January 2, 2006")
}
