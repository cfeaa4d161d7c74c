package domain

type OfferType string

const (
	OfferTypeDiscount OfferType = "discount"
	OfferTypeTrial    OfferType = "trial"
	OfferTypeBundle   OfferType = "bundle"
	OfferTypeLimited  OfferType = "limited"
	OfferTypeWelcome  OfferType = "welcome"
	OfferTypeSpecial  OfferType = "special"
)

type OfferTrigger string

const (
	OfferTriggerScroll OfferTrigger = "scroll"
	OfferTriggerTime   OfferTrigger = "time"
)

// Offer is a full-size promotional popup.
//
// TriggerValue is a scroll percentage for OfferTriggerScroll and a delay in
// milliseconds for OfferTriggerTime. Countdown is in seconds.
type Offer struct {
	ID            string       `json:"id"`
	Type          OfferType    `json:"type"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle"`
	Description   string       `json:"description"`
	Discount      *int         `json:"discount,omitempty"`
	OriginalPrice string       `json:"originalPrice"`
	SalePrice     string       `json:"salePrice"`
	TimeLeft      *string      `json:"timeLeft,omitempty"`
	ButtonText    string       `json:"buttonText"`
	ButtonURL     string       `json:"buttonUrl"`
	Gradient      string       `json:"gradient"`
	Icon          string       `json:"icon"`
	Trigger       OfferTrigger `json:"trigger"`
	TriggerValue  int          `json:"triggerValue"`
	Pattern       string       `json:"pattern"`
	Countdown     *int         `json:"countdown,omitempty"`
	IsActive      bool         `json:"isActive"`
	Priority      int          `json:"priority"`
}
