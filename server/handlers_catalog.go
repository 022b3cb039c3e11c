package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ipriyanshu25/infuencer/internal/catalog"
	"github.com/ipriyanshu25/infuencer/misc"
)

///////// Reference catalogs /////////

func getCountries(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, catalog.GetAllCountries(s.db, s.Cfg))
	}
}

func getInterests(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, catalog.GetAllInterests(s.db, s.Cfg))
	}
}

func postInterest(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name string `json:"name"`
		}
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		in, err := catalog.CreateInterest(s.db, s.Cfg, req.Name, time.Now().Unix())
		if err != nil {
			if err == catalog.ErrInterestExists {
				c.JSON(409, misc.StatusErr(err.Error()))
				return
			}
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(201, in)
	}
}

func getAudienceRanges(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, catalog.GetAudienceRanges(s.db, s.Cfg))
	}
}
