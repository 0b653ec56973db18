package models

type QrCode struct {
	BaseModel

	Name          string `json:"name"`
	StatusMessage string `json:"status_message"`
	IsActive      bool   `json:"is_active"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`

	Calls    []Call    `json:"calls"`
	Messages []Message `json:"messages"`
}
