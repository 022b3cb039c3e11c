package server

import (
	"os"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/internal/auth"
	"github.com/ipriyanshu25/infuencer/internal/catalog"
	"github.com/ipriyanshu25/infuencer/misc"
)

// Server owns the single bolt handle and the auth directory. Both are
// built once here and passed around explicitly; nothing in the process
// reaches for ambient globals.
type Server struct {
	Cfg *config.Config

	r    *gin.Engine
	db   *bolt.DB
	auth *auth.Auth
}

func New(cfg *config.Config, r *gin.Engine) (*Server, error) {
	for _, dir := range []string{cfg.DBPath, cfg.UploadsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db := misc.OpenDB(cfg.DBPath, cfg.DBName)
	if err := misc.CreateBuckets(db, cfg.Bucket.All); err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{cfg.Bucket.Country, cfg.Bucket.Interest} {
			if err := misc.InitIndex(tx, name, 1); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := catalog.SeedAudienceRanges(db, cfg); err != nil {
		return nil, err
	}
	if err := catalog.SeedCountries(db, cfg); err != nil {
		return nil, err
	}

	srv := &Server{
		Cfg:  cfg,
		r:    r,
		db:   db,
		auth: auth.New(db, cfg),
	}
	srv.initializeRoutes(r)
	return srv, nil
}

func (s *Server) initializeRoutes(r *gin.Engine) {
	verify := s.auth.VerifyToken()

	brand := r.Group("/brand")
	{
		brand.POST("/register", brandRegister(s))
		brand.POST("/login", brandLogin(s))
		brand.POST("/profile", verify, brandProfile(s))
	}

	inf := r.Group("/influencer")
	{
		inf.POST("/register", influencerRegister(s))
		inf.POST("/login", influencerLogin(s))
		inf.POST("/profile", verify, influencerProfile(s))
	}

	cmp := r.Group("/campaign", verify)
	{
		cmp.POST("/create", postCampaign(s))
		cmp.GET("/getAll", getAllCampaigns(s))
		cmp.GET("", getCampaign(s))
		cmp.POST("/update", putCampaign(s))
		cmp.POST("/delete", delCampaign(s))
		cmp.GET("/active", getActiveCampaigns(s))
		cmp.GET("/previous", getPreviousCampaigns(s))
		cmp.POST("/getByCategory", getCampaignsByCategory(s))
	}

	apply := r.Group("/applyCampaign", verify)
	{
		apply.POST("/campaign", applyToCampaign(s))
		apply.POST("/list", getApplicants(s))
		apply.POST("/approve", approveApplicant(s))
	}

	contract := r.Group("/contract", verify)
	{
		contract.POST("/sendContract", sendContract(s))
		contract.POST("/getContract", getContracts(s))
		contract.GET("/render", renderContract(s))
		contract.POST("/accept", acceptContract(s))
	}

	r.GET("/country/getAll", getCountries(s))
	r.GET("/interest/getAll", getInterests(s))
	r.POST("/interest/create", verify, postInterest(s))
	r.GET("/audience/getList", getAudienceRanges(s))

	r.GET("/uploads/*fp", staticGzipServe(s.Cfg.UploadsDir))
}

func (s *Server) Run() error {
	return s.r.Run(s.Cfg.Host + ":" + s.Cfg.Port)
}

func (s *Server) Close() error {
	return s.db.Close()
}
