package server

import (
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/ipriyanshu25/infuencer/internal/auth"
	"github.com/ipriyanshu25/infuencer/internal/catalog"
	"github.com/ipriyanshu25/infuencer/misc"
)

///////// Influencers /////////

func influencerRegister(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		inf := &auth.Influencer{
			Name:        req.Name,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			SocialMedia: req.SocialMedia,
			Audience:    req.Audience,
			Bio:         req.Bio,
			CountryId:   req.CountryId,
			CallingId:   req.CallingId,
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			cty := catalog.GetCountryTx(tx, s.Cfg, req.CountryId)
			if cty == nil {
				return auth.ErrInvalidCountry
			}
			calling := catalog.GetCountryTx(tx, s.Cfg, req.CallingId)
			if calling == nil {
				return auth.ErrInvalidCalling
			}
			inf.County = cty.CountryName
			inf.CallingCode = calling.CallingCode

			return s.auth.CreateInfluencerTx(tx, inf, time.Now().Unix())
		}); err != nil {
			if err == auth.ErrEmailExists {
				c.JSON(409, misc.StatusErr("Influencer already exists"))
				return
			}
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(201, gin.H{"message": "Influencer registered successfully", "influencerId": inf.Id})
	}
}

func influencerLogin(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginReq
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(400, misc.StatusErr("Both fields are required"))
			return
		}

		inf, tok, err := s.auth.SignInInfluencer(req.Email, req.Password)
		if err != nil {
			if err == auth.ErrInfNotFound {
				c.JSON(404, misc.StatusErr(err.Error()))
				return
			}
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, gin.H{"message": "Login successful", "influencerId": inf.Id, "token": tok})
	}
}

func influencerProfile(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			InfluencerId string `json:"influencerId"`
		}
		misc.BindJSON(c, &req)

		// no explicit id means the signed-in principal
		if req.InfluencerId == "" {
			if claims := auth.GetCtxPrincipal(c); claims != nil {
				req.InfluencerId = claims.Id
			}
		}
		if req.InfluencerId == "" {
			c.JSON(400, misc.StatusErr("Influencer ID is required"))
			return
		}

		inf := s.auth.GetInfluencer(req.InfluencerId)
		if inf == nil {
			c.JSON(404, misc.StatusErr(auth.ErrInfNotFound.Error()))
			return
		}

		c.JSON(200, inf.Clean())
	}
}
