package checkout

import "regexp"

// Address is the shipping information collected at checkout.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pinCode"`
	Country   string `json:"country"`
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinRe   = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// Validate checks the required fields and formats. Phone is optional but
// must be a valid 10-digit mobile number when given.
func (a Address) Validate() error {
	if a.FirstName == "" {
		return NewInvalidAddressError("firstName", "required")
	}
	if a.LastName == "" {
		return NewInvalidAddressError("lastName", "required")
	}
	if a.Email == "" {
		return NewInvalidAddressError("email", "required")
	}
	if !emailRe.MatchString(a.Email) {
		return NewInvalidAddressError("email", "must be a valid email address")
	}
	if a.Phone != "" && !phoneRe.MatchString(a.Phone) {
		return NewInvalidAddressError("phone", "must be a valid 10-digit mobile number")
	}
	if a.Street == "" {
		return NewInvalidAddressError("address", "required")
	}
	if a.City == "" {
		return NewInvalidAddressError("city", "required")
	}
	if a.State == "" {
		return NewInvalidAddressError("state", "required")
	}
	if a.PinCode == "" {
		return NewInvalidAddressError("pinCode", "required")
	}
	if !pinRe.MatchString(a.PinCode) {
		return NewInvalidAddressError("pinCode", "must be a valid 6-digit PIN code")
	}
	return nil
}
