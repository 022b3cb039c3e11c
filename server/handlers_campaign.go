package server

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ipriyanshu25/infuencer/internal/catalog"
	"github.com/ipriyanshu25/infuencer/internal/common"
	"github.com/ipriyanshu25/infuencer/misc"
)

///////// Campaigns /////////

// bindCampaignBody flattens either wire encoding (JSON body or
// multipart form) into field-name → raw-value so the typed field
// parsers are invoked the same way regardless of transport.
func bindCampaignBody(c *gin.Context) (map[string]string, error) {
	vals := map[string]string{}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for k, v := range form.Value {
			if len(v) > 0 {
				vals[k] = v[0]
			}
		}
		return vals, nil
	}

	var raw map[string]json.RawMessage
	if err := misc.BindJSON(c, &raw); err != nil {
		return nil, err
	}
	for k, v := range raw {
		vals[k] = rawString(v)
	}
	return vals, nil
}

func postCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		vals, err := bindCampaignBody(c)
		if err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		brandId := vals["brandId"]
		if brandId == "" {
			c.JSON(400, misc.StatusErr("BrandId is required."))
			return
		}
		if vals["productOrServiceName"] == "" || vals["goal"] == "" {
			c.JSON(400, misc.StatusErr("productOrServiceName and goal are required."))
			return
		}
		if !common.IsValidGoal(vals["goal"]) {
			c.JSON(400, misc.StatusErr(common.ErrBadGoal.Error()))
			return
		}

		brand := s.auth.GetBrand(brandId)
		if brand == nil {
			c.JSON(404, misc.StatusErr("Brand not found."))
			return
		}

		interestIds := common.ParseInterestIds(vals["interestId"])
		interestName, err := s.resolveInterests(interestIds)
		if err != nil {
			c.JSON(404, misc.StatusErr(err.Error()))
			return
		}

		images, err := s.saveUploadedFiles(c, "images")
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		briefs, err := s.saveUploadedFiles(c, "creativeBrief")
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}

		now := time.Now()
		cmp := &common.Campaign{
			Id:                   uuid.New().String(),
			BrandId:              brandId,
			BrandName:            brand.Name,
			ProductOrServiceName: vals["productOrServiceName"],
			Description:          vals["description"],
			TargetAudience:       common.ParseTargetAudience(vals["targetAudience"]),
			InterestIds:          interestIds,
			InterestName:         interestName,
			Goal:                 vals["goal"],
			Budget:               coerceFloat(vals["budget"]),
			Timeline:             common.ParseTimeline(vals["timeline"]),
			Images:               images,
			CreativeBrief:        briefs,
			AdditionalNotes:      vals["additionalNotes"],
			CreatedAt:            now.Unix(),
		}
		cmp.SetActivity(now)

		if err := s.db.Update(func(tx *bolt.Tx) error {
			return saveCampaign(tx, s, cmp)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(201, gin.H{"message": "Campaign created successfully.", "campaign": cmp})
	}
}

func getAllCampaigns(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, common.GetAllCampaigns(s.db, s.Cfg, c.Query("brandId")))
	}
}

func getCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(400, misc.StatusErr("Query parameter id is required."))
			return
		}

		cmp := common.GetCampaign(s.db, s.Cfg, id)
		if cmp == nil {
			c.JSON(404, misc.StatusErr("Campaign not found."))
			return
		}
		c.JSON(200, cmp)
	}
}

func putCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		vals, err := bindCampaignBody(c)
		if err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		id := vals["campaignsId"]
		if id == "" {
			c.JSON(400, misc.StatusErr("CampaignsId is required."))
			return
		}

		if goal, ok := vals["goal"]; ok && !common.IsValidGoal(goal) {
			c.JSON(400, misc.StatusErr(common.ErrBadGoal.Error()))
			return
		}

		images, err := s.saveUploadedFiles(c, "images")
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		briefs, err := s.saveUploadedFiles(c, "creativeBrief")
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}

		var cmp *common.Campaign
		err = s.db.Update(func(tx *bolt.Tx) error {
			if cmp = common.GetCampaignTx(tx, s.Cfg, id); cmp == nil {
				return common.ErrCampaignNotFound
			}

			// identity, ownership and derived fields stay untouched
			if v, ok := vals["productOrServiceName"]; ok && v != "" {
				cmp.ProductOrServiceName = v
			}
			if v, ok := vals["description"]; ok {
				cmp.Description = v
			}
			if v, ok := vals["goal"]; ok {
				cmp.Goal = v
			}
			if v, ok := vals["budget"]; ok {
				cmp.Budget = coerceFloat(v)
			}
			if v, ok := vals["targetAudience"]; ok {
				cmp.TargetAudience = common.ParseTargetAudience(v)
			}
			if v, ok := vals["additionalNotes"]; ok {
				cmp.AdditionalNotes = v
			}
			if v, ok := vals["interestId"]; ok {
				ids := common.ParseInterestIds(v)
				var names []string
				for _, iid := range ids {
					in := catalog.GetInterestTx(tx, s.Cfg, iid)
					if in == nil {
						return catalog.ErrInterestNotFound
					}
					names = append(names, in.Name)
				}
				cmp.InterestIds = ids
				cmp.InterestName = strings.Join(names, ", ")
			}
			if v, ok := vals["timeline"]; ok {
				cmp.Timeline = common.ParseTimeline(v)
			}
			if len(images) > 0 {
				cmp.Images = images
			}
			if len(briefs) > 0 {
				cmp.CreativeBrief = briefs
			}

			cmp.SetActivity(time.Now())
			return saveCampaign(tx, s, cmp)
		})
		if err != nil {
			if err == common.ErrCampaignNotFound {
				c.JSON(404, misc.StatusErr(err.Error()))
				return
			}
			if err == catalog.ErrInterestNotFound {
				c.JSON(404, misc.StatusErr(err.Error()))
				return
			}
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, gin.H{"message": "Campaign updated successfully.", "campaign": cmp})
	}
}

func delCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		vals, err := bindCampaignBody(c)
		if err != nil || vals["campaignsId"] == "" {
			c.JSON(400, misc.StatusErr("CampaignsId is required."))
			return
		}

		id := vals["campaignsId"]
		if err := s.db.Update(func(tx *bolt.Tx) error {
			if common.GetCampaignTx(tx, s.Cfg, id) == nil {
				return common.ErrCampaignNotFound
			}
			return misc.DelBucketBytes(tx, s.Cfg.Bucket.Campaign, id)
		}); err != nil {
			if err == common.ErrCampaignNotFound {
				c.JSON(404, misc.StatusErr(err.Error()))
				return
			}
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, misc.StatusOK(id, "Campaign deleted successfully."))
	}
}

// active/previous split a brand's campaigns on the derived activity
// flag, computed live so a campaign that lapsed since its last write
// still lands on the right side.
func getActiveCampaigns(s *Server) gin.HandlerFunc {
	return campaignsByActivity(s, true)
}

func getPreviousCampaigns(s *Server) gin.HandlerFunc {
	return campaignsByActivity(s, false)
}

func campaignsByActivity(s *Server, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		brandId := c.Query("brandId")
		if brandId == "" {
			c.JSON(400, misc.StatusErr("BrandId is required."))
			return
		}

		now := time.Now()
		out := []*common.Campaign{}
		for _, cmp := range common.GetAllCampaigns(s.db, s.Cfg, brandId) {
			if cmp.IsActive(now) == active {
				out = append(out, cmp)
			}
		}
		c.JSON(200, out)
	}
}

type categoryQuery struct {
	Category string `json:"category"`
	Search   string `json:"search,omitempty"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

func getCampaignsByCategory(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q categoryQuery
		if err := misc.BindJSON(c, &q); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if q.Category == "" {
			c.JSON(400, misc.StatusErr("Category is required."))
			return
		}
		if q.Page < 1 {
			q.Page = 1
		}
		if q.Limit < 1 {
			q.Limit = 10
		}

		category := []string{strings.ToLower(strings.TrimSpace(q.Category))}
		search := strings.ToLower(strings.TrimSpace(q.Search))
		maxBudget, isBudget := 0.0, false
		if search != "" {
			if f, err := strconv.ParseFloat(search, 64); err == nil {
				maxBudget, isBudget = f, true
			}
		}

		matched := []*common.Campaign{}
		for _, cmp := range common.GetAllCampaigns(s.db, s.Cfg, "") {
			names := misc.LowerSlice(strings.Split(cmp.InterestName, ", "))
			if !misc.DoesIntersect(category, names) {
				continue
			}
			if search != "" {
				// a numeric term doubles as a budget cap
				if !strings.Contains(strings.ToLower(cmp.ProductOrServiceName), search) &&
					!(isBudget && cmp.Budget <= maxBudget) {
					continue
				}
			}
			matched = append(matched, cmp)
		}

		total := len(matched)
		start := (q.Page - 1) * q.Limit
		if start > total {
			start = total
		}
		end := start + q.Limit
		if end > total {
			end = total
		}

		c.JSON(200, gin.H{
			"meta": common.PageMeta{
				Total:      total,
				Page:       q.Page,
				Limit:      q.Limit,
				TotalPages: (total + q.Limit - 1) / q.Limit,
			},
			"campaigns": matched[start:end],
		})
	}
}
