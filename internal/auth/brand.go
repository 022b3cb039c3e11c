package auth

import "regexp"

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// Brand is the advertiser side of the marketplace. County and
// CallingCode are snapshots resolved from the country catalog at
// registration and are not kept in sync afterwards.
type Brand struct {
	Id    string `json:"brandId"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// bcrypt hash, stripped from every response by Clean
	Password string `json:"password,omitempty"`

	CountryId   string `json:"countryId"`
	CallingId   string `json:"callingId"`
	County      string `json:"county"`
	CallingCode string `json:"callingcode"`

	CreatedAt int64 `json:"createdAt"`
}

func (b *Brand) Check() error {
	if b.Name == "" {
		return ErrInvalidName
	}
	if !emailRegex.MatchString(b.Email) {
		return ErrInvalidEmail
	}
	if len(b.Password) < 8 {
		return ErrShortPass
	}
	if !phoneRegex.MatchString(b.Phone) {
		return ErrInvalidPhone
	}
	if b.CountryId == "" {
		return ErrInvalidCountry
	}
	if b.CallingId == "" {
		return ErrInvalidCalling
	}
	return nil
}

func (b *Brand) Clean() *Brand {
	out := *b
	out.Password = ""
	return &out
}
