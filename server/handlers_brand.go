package server

import (
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/ipriyanshu25/infuencer/internal/auth"
	"github.com/ipriyanshu25/infuencer/internal/catalog"
	"github.com/ipriyanshu25/infuencer/misc"
)

///////// Brands /////////

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`

	CountryId string `json:"countryId"`
	CallingId string `json:"callingId"`

	// influencer-only fields, ignored for brands
	SocialMedia string `json:"socialMedia"`
	Audience    string `json:"audience"`
	Bio         string `json:"bio"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func brandRegister(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		b := &auth.Brand{
			Name:      req.Name,
			Email:     req.Email,
			Password:  req.Password,
			Phone:     req.Phone,
			CountryId: req.CountryId,
			CallingId: req.CallingId,
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
			b.County = cty.CountryName
			b.CallingCode = calling.CallingCode

			return s.auth.CreateBrandTx(tx, b, time.Now().Unix())
		}); err != nil {
			if err == auth.ErrEmailExists {
				c.JSON(409, misc.StatusErr("Brand already exists"))
				return
			}
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(201, gin.H{"message": "Brand registered successfully", "brandId": b.Id})
	}
}

func brandLogin(s *Server) gin.HandlerFunc {
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

		b, tok, err := s.auth.SignInBrand(req.Email, req.Password)
		if err != nil {
			if err == auth.ErrBrandNotFound {
				c.JSON(404, misc.StatusErr(err.Error()))
				return
			}
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, gin.H{"message": "Login successful", "brandId": b.Id, "token": tok})
	}
}

func brandProfile(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BrandId string `json:"brandId"`
		}
		misc.BindJSON(c, &req)

		// no explicit id means the signed-in principal
		if req.BrandId == "" {
			if claims := auth.GetCtxPrincipal(c); claims != nil {
				req.BrandId = claims.Id
			}
		}
		if req.BrandId == "" {
			c.JSON(400, misc.StatusErr("Brand ID is required"))
			return
		}

		b := s.auth.GetBrand(req.BrandId)
		if b == nil {
			c.JSON(404, misc.StatusErr(auth.ErrBrandNotFound.Error()))
			return
		}

		c.JSON(200, b.Clean())
	}
}
