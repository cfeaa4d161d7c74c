package domain

type MiniOffer struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Action    string `json:"action"`
	ActionURL string `json:"actionUrl"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Duration  int    `json:"duration"`
	IsActive  bool   `json:"isActive"`
	Priority  int    `json:"priority"`
}
