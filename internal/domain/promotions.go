package domain

// Promotions is everything a page needs to render its promotional surface.
// Each list may be empty; promotional content is best-effort.
type Promotions struct {
	Offers        []Offer        `json:"offers"`
	Banners       []Banner       `json:"banners"`
	Notifications []Notification `json:"notifications"`
	MiniOffers    []MiniOffer    `json:"miniOffers"`
}
