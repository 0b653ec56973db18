package models

type Account struct {
	BaseModel

	Email  string  `json:"email" gorm:"uniqueIndex"`
	Name   string  `json:"name"`
	Nick   string  `json:"nick"`
	Avatar *string `json:"avatar"`
	Role   string  `json:"role"`

	QrCodes []QrCode `json:"qr_codes"`
}

// IsOnboarded reports whether the account finished profile setup.
// An account without a nickname cannot be shown to visitors yet.
func (v Account) IsOnboarded() bool {
	return len(v.Nick) > 0
}
