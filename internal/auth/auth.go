package auth

import (
	"encoding/json"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/ipriyanshu25/infuencer/config"
	"github.com/ipriyanshu25/infuencer/misc"
)

// Auth owns the brand and influencer directories and everything
// credential related. It is constructed once at startup and handed to
// the server explicitly.
type Auth struct {
	db  *bolt.DB
	cfg *config.Config
}

func New(db *bolt.DB, cfg *config.Config) *Auth {
	return &Auth{
		db:  db,
		cfg: cfg,
	}
}

func (a *Auth) GetBrandTx(tx *bolt.Tx, id string) *Brand {
	var b Brand
	if misc.GetTxJson(tx, a.cfg.Bucket.Brand, id, &b) == nil && b.Id != "" {
		return &b
	}
	return nil
}

func (a *Auth) GetBrand(id string) (b *Brand) {
	a.db.View(func(tx *bolt.Tx) error {
		b = a.GetBrandTx(tx, id)
		return nil
	})
	return
}

func (a *Auth) GetInfluencerTx(tx *bolt.Tx, id string) *Influencer {
	var inf Influencer
	if misc.GetTxJson(tx, a.cfg.Bucket.Influencer, id, &inf) == nil && inf.Id != "" {
		return &inf
	}
	return nil
}

func (a *Auth) GetInfluencer(id string) (inf *Influencer) {
	a.db.View(func(tx *bolt.Tx) error {
		inf = a.GetInfluencerTx(tx, id)
		return nil
	})
	return
}

// GetBrandByEmailTx scans the brand bucket for a matching email. Email
// is the login key but documents are stored under their uuid, so this
// is a linear walk, same as the influencer variant below.
func (a *Auth) GetBrandByEmailTx(tx *bolt.Tx, email string) *Brand {
	email = misc.TrimEmail(email)

	var found *Brand
	misc.GetBucket(tx, a.cfg.Bucket.Brand).ForEach(func(k, v []byte) error {
		var b Brand
		if json.Unmarshal(v, &b) == nil && misc.TrimEmail(b.Email) == email {
			found = &b
		}
		return nil
	})
	return found
}

func (a *Auth) GetInfluencerByEmailTx(tx *bolt.Tx, email string) *Influencer {
	email = misc.TrimEmail(email)

	var found *Influencer
	misc.GetBucket(tx, a.cfg.Bucket.Influencer).ForEach(func(k, v []byte) error {
		var inf Influencer
		if json.Unmarshal(v, &inf) == nil && misc.TrimEmail(inf.Email) == email {
			found = &inf
		}
		return nil
	})
	return found
}

// CreateBrandTx validates, enforces the unique email, hashes the
// password and stores the brand under a fresh uuid.
func (a *Auth) CreateBrandTx(tx *bolt.Tx, b *Brand, createdAt int64) error {
	if err := b.Check(); err != nil {
		return err
	}
	if a.GetBrandByEmailTx(tx, b.Email) != nil {
		return ErrEmailExists
	}

	hashed, err := HashPassword(b.Password)
	if err != nil {
		return err
	}

	b.Id = uuid.New().String()
	b.Email = misc.TrimEmail(b.Email)
	b.Password = hashed
	b.CreatedAt = createdAt
	return misc.PutTxJson(tx, a.cfg.Bucket.Brand, b.Id, b)
}

func (a *Auth) CreateInfluencerTx(tx *bolt.Tx, inf *Influencer, createdAt int64) error {
	if err := inf.Check(); err != nil {
		return err
	}
	if a.GetInfluencerByEmailTx(tx, inf.Email) != nil {
		return ErrEmailExists
	}

	hashed, err := HashPassword(inf.Password)
	if err != nil {
		return err
	}

	inf.Id = uuid.New().String()
	inf.Email = misc.TrimEmail(inf.Email)
	inf.Password = hashed
	inf.CreatedAt = createdAt
	return misc.PutTxJson(tx, a.cfg.Bucket.Influencer, inf.Id, inf)
}

// SignInBrand checks the credentials and issues a signed token.
func (a *Auth) SignInBrand(email, pass string) (b *Brand, tok string, err error) {
	a.db.View(func(tx *bolt.Tx) error {
		b = a.GetBrandByEmailTx(tx, email)
		return nil
	})
	if b == nil {
		return nil, "", ErrBrandNotFound
	}
	if !CheckPassword(b.Password, pass) {
		return nil, "", ErrInvalidPass
	}
	tok, err = SignToken(b.Id, b.Email, a.cfg.TokenSecret)
	return
}

func (a *Auth) SignInInfluencer(email, pass string) (inf *Influencer, tok string, err error) {
	a.db.View(func(tx *bolt.Tx) error {
		inf = a.GetInfluencerByEmailTx(tx, email)
		return nil
	})
	if inf == nil {
		return nil, "", ErrInfNotFound
	}
	if !CheckPassword(inf.Password, pass) {
		return nil, "", ErrInvalidPass
	}
	tok, err = SignToken(inf.Id, inf.Email, a.cfg.TokenSecret)
	return
}
