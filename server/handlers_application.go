package server

import (
	"log"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/ipriyanshu25/infuencer/internal/auth"
	"github.com/ipriyanshu25/infuencer/internal/common"
	"github.com/ipriyanshu25/infuencer/misc"
)

///////// Applications /////////

type applyReq struct {
	CampaignId   string `json:"campaignId"`
	InfluencerId string `json:"influencerId"`
}

func applyToCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyReq
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if req.CampaignId == "" || req.InfluencerId == "" {
			c.JSON(400, misc.StatusErr("Both campaignId and influencerId are required"))
			return
		}

		var applicantCount int
		if err := s.db.Update(func(tx *bolt.Tx) error {
			inf := s.auth.GetInfluencerTx(tx, req.InfluencerId)
			if inf == nil {
				return auth.ErrInfNotFound
			}

			app := common.GetApplicationTx(tx, s.Cfg, req.CampaignId)
			if app == nil {
				app = &common.Application{
					CampaignId: req.CampaignId,
					CreatedAt:  time.Now().Unix(),
				}
			}

			if _, err := app.AddApplicant(req.InfluencerId, inf.Name, s.Cfg.StrictApply); err != nil {
				return err
			}

			applicantCount = len(app.Applicants)
			return saveApplication(tx, s, app)
		}); err != nil {
			switch err {
			case auth.ErrInfNotFound:
				c.JSON(404, misc.StatusErr(err.Error()))
			case common.ErrAlreadyApplied:
				c.JSON(409, misc.StatusErr(err.Error()))
			default:
				c.JSON(500, misc.StatusErr(err.Error()))
			}
			return
		}

		// Write-through sync of the cached count onto the campaign.
		// Deliberately a separate transaction and best-effort: a
		// failure here leaves the count stale until the next apply.
		if err := s.db.Update(func(tx *bolt.Tx) error {
			cmp := common.GetCampaignTx(tx, s.Cfg, req.CampaignId)
			if cmp == nil {
				return nil
			}
			cmp.ApplicantCount = applicantCount
			return saveCampaign(tx, s, cmp)
		}); err != nil {
			log.Println("Err syncing applicant count for", req.CampaignId, err)
		}

		c.JSON(200, gin.H{
			"message":        "Application recorded",
			"campaignId":     req.CampaignId,
			"applicantCount": applicantCount,
		})
	}
}

type applicantListReq struct {
	CampaignId string `json:"campaignId"`
	common.ApplicantQuery
}

func getApplicants(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applicantListReq
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if req.CampaignId == "" {
			c.JSON(400, misc.StatusErr("campaignId is required"))
			return
		}
		if req.Limit == 0 {
			req.Limit = 10
		}

		// a campaign nobody applied to yet is an empty page, not a 404
		app := common.GetApplication(s.db, s.Cfg, req.CampaignId)
		c.JSON(200, app.Page(&req.ApplicantQuery))
	}
}

func approveApplicant(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyReq
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if req.CampaignId == "" || req.InfluencerId == "" {
			c.JSON(400, misc.StatusErr("Both campaignId and influencerId are required"))
			return
		}

		var approved *common.Applicant
		if err := s.db.Update(func(tx *bolt.Tx) error {
			app := common.GetApplicationTx(tx, s.Cfg, req.CampaignId)
			if app == nil {
				return common.ErrNoApplications
			}

			var err error
			if approved, err = app.Approve(req.InfluencerId); err != nil {
				return err
			}
			return saveApplication(tx, s, app)
		}); err != nil {
			switch err {
			case common.ErrNoApplications:
				c.JSON(404, misc.StatusErr(err.Error()))
			case common.ErrAlreadyApproved:
				c.JSON(409, misc.StatusErr(err.Error()))
			case common.ErrNeverApplied:
				c.JSON(400, misc.StatusErr(err.Error()))
			default:
				c.JSON(500, misc.StatusErr(err.Error()))
			}
			return
		}

		c.JSON(200, gin.H{
			"message":    "Influencer approved for campaign",
			"campaignId": req.CampaignId,
			"approved":   approved,
		})
	}
}
