package auth

// Influencer mirrors Brand but carries the creator-side attributes
// (social media handle, audience size bracket, bio).
type Influencer struct {
	Id    string `json:"influencerId"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Password string `json:"password,omitempty"`

	SocialMedia string `json:"socialMedia"`
	Audience    string `json:"audience"`
	Bio         string `json:"bio,omitempty"`

	CountryId   string `json:"countryId"`
	CallingId   string `json:"callingId"`
	County      string `json:"county"`
	CallingCode string `json:"callingcode"`

	CreatedAt int64 `json:"createdAt"`
}

func (inf *Influencer) Check() error {
	if inf.Name == "" {
		return ErrInvalidName
	}
	if !emailRegex.MatchString(inf.Email) {
		return ErrInvalidEmail
	}
	if len(inf.Password) < 8 {
		return ErrShortPass
	}
	if !phoneRegex.MatchString(inf.Phone) {
		return ErrInvalidPhone
	}
	if inf.SocialMedia == "" {
		return ErrMissingSocial
	}
	if inf.Audience == "" {
		return ErrMissingAudience
	}
	if inf.CountryId == "" {
		return ErrInvalidCountry
	}
	if inf.CallingId == "" {
		return ErrInvalidCalling
	}
	return nil
}

func (inf *Influencer) Clean() *Influencer {
	out := *inf
	out.Password = ""
	return &out
}
