package server

import (
	"log"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ipriyanshu25/infuencer/internal/auth"
	"github.com/ipriyanshu25/infuencer/internal/common"
	"github.com/ipriyanshu25/infuencer/internal/templates"
	"github.com/ipriyanshu25/infuencer/misc"
	"github.com/ipriyanshu25/infuencer/platforms/pdf"
)

///////// Contracts /////////

// ModeRender streams the document to the caller without storing
// anything; any other mode persists the contract.
const ModeRender = "render"

type contractReq struct {
	BrandId      string `json:"brandId"`
	InfluencerId string `json:"influencerId"`
	CampaignId   string `json:"campaignId"`

	EffectiveDate          string              `json:"effectiveDate"`
	DeliverableDescription string              `json:"deliverableDescription"`
	FeeAmount              string              `json:"feeAmount"`
	Term                   *common.PaymentTerm `json:"term"`

	Mode string `json:"mode,omitempty"`
}

func sendContract(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contractReq
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if req.BrandId == "" || req.InfluencerId == "" || req.CampaignId == "" {
			c.JSON(400, misc.StatusErr("brandId, influencerId, and campaignId are required"))
			return
		}

		var (
			brand *auth.Brand
			inf   *auth.Influencer
			cmp   *common.Campaign
		)
		if err := s.db.View(func(tx *bolt.Tx) error {
			if cmp = common.GetCampaignTx(tx, s.Cfg, req.CampaignId); cmp == nil || cmp.Timeline == nil {
				return common.ErrNoTimeline
			}
			if brand = s.auth.GetBrandTx(tx, req.BrandId); brand == nil {
				return auth.ErrBrandNotFound
			}
			if inf = s.auth.GetInfluencerTx(tx, req.InfluencerId); inf == nil {
				return auth.ErrInfNotFound
			}
			return nil
		}); err != nil {
			c.JSON(404, misc.StatusErr(err.Error()))
			return
		}

		// the timeline is snapshotted here; later campaign edits must
		// not reach an issued contract
		timeline := *cmp.Timeline
		ct := &common.Contract{
			Id:                     uuid.New().String(),
			BrandId:                brand.Id,
			InfluencerId:           inf.Id,
			CampaignId:             cmp.Id,
			BrandName:              brand.Name,
			InfluencerName:         inf.Name,
			EffectiveDate:          req.EffectiveDate,
			DeliverableDescription: req.DeliverableDescription,
			FeeAmount:              req.FeeAmount,
			Term:                   req.Term,
			Timeline:               &timeline,
			CreatedAt:              time.Now().Unix(),
		}

		if req.Mode == ModeRender {
			streamContract(s, c, ct)
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			return saveContract(tx, s, ct)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(201, gin.H{"message": "Contract created successfully", "contract": ct})
	}
}

func getContracts(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BrandId      string `json:"brandId"`
			InfluencerId string `json:"influencerId"`
		}
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if req.BrandId == "" || req.InfluencerId == "" {
			c.JSON(400, misc.StatusErr("brandId and influencerId are required"))
			return
		}

		contracts := common.GetContractsByPair(s.db, s.Cfg, req.BrandId, req.InfluencerId)
		if len(contracts) == 0 {
			c.JSON(404, misc.StatusErr(common.ErrNoContracts.Error()))
			return
		}

		c.JSON(200, gin.H{"contracts": contracts})
	}
}

func renderContract(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(400, misc.StatusErr("Query parameter id is required."))
			return
		}

		var ct *common.Contract
		if err := s.db.View(func(tx *bolt.Tx) error {
			if ct = common.GetContractTx(tx, s.Cfg, id); ct == nil {
				return common.ErrContractNotFound
			}
			// the referenced parties must still resolve to render
			if s.auth.GetBrandTx(tx, ct.BrandId) == nil {
				return auth.ErrBrandNotFound
			}
			if s.auth.GetInfluencerTx(tx, ct.InfluencerId) == nil {
				return auth.ErrInfNotFound
			}
			if common.GetCampaignTx(tx, s.Cfg, ct.CampaignId) == nil {
				return common.ErrCampaignNotFound
			}
			return nil
		}); err != nil {
			c.JSON(404, misc.StatusErr(err.Error()))
			return
		}

		streamContract(s, c, ct)
	}
}

func acceptContract(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ContractId string `json:"contractId"`
		}
		if err := misc.BindJSON(c, &req); err != nil || req.ContractId == "" {
			c.JSON(400, misc.StatusErr("contractId is required"))
			return
		}

		var ct *common.Contract
		if err := s.db.Update(func(tx *bolt.Tx) error {
			if ct = common.GetContractTx(tx, s.Cfg, req.ContractId); ct == nil {
				return common.ErrContractNotFound
			}
			// accepting twice is a no-op, not a conflict
			if !ct.Accept() {
				return nil
			}
			return saveContract(tx, s, ct)
		}); err != nil {
			if err == common.ErrContractNotFound {
				c.JSON(404, misc.StatusErr(err.Error()))
				return
			}
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, gin.H{"message": "Contract accepted", "contract": ct})
	}
}

func streamContract(s *Server, c *gin.Context, ct *common.Contract) {
	ctx := map[string]interface{}{
		"ContractId":             ct.Id,
		"BrandName":              ct.BrandName,
		"InfluencerName":         ct.InfluencerName,
		"CampaignId":             ct.CampaignId,
		"EffectiveDate":          ct.EffectiveDate,
		"DeliverableDescription": ct.DeliverableDescription,
		"FeeAmount":              ct.FeeAmount,
	}
	if ct.Term != nil {
		ctx["PaymentMethod"] = ct.Term.PaymentMethod
		ctx["PaymentDays"] = ct.Term.PaymentTerms
	}
	if ct.Timeline != nil {
		ctx["StartDate"] = formatDate(ct.Timeline.StartDate)
		ctx["EndDate"] = formatDate(ct.Timeline.EndDate)
	}

	html := templates.Contract.Render(ctx)

	if s.Cfg.Sandbox {
		c.Header("Content-Type", "text/html; charset=utf-8")
	} else {
		c.Header("Content-Type", "application/pdf")
	}
	c.Status(200)

	// the status is already on the wire, a failure here can only be logged
	if err := pdf.ConvertHTMLToPDF(html, c.Writer, s.Cfg); err != nil {
		log.Println("Err rendering contract", ct.Id, err)
	}
}
