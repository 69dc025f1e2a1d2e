package models

// TipsRequest filters the tip-sheet endpoint.
type TipsRequest struct {
	Date  string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Track string `query:"track" json:"track"`
	Limit int    `query:"limit" json:"limit" default:"200" validate:"gte=1,lte=500"`
}

// MeetingsRequest filters the meetings endpoint.
type MeetingsRequest struct {
	Location string `query:"location" json:"location" validate:"omitempty,alpha,uppercase"`
	WetOnly  bool   `query:"wet_only" json:"wet_only"`
}
