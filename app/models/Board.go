package models

type SpaceType string

const (
	SpaceOpportunity SpaceType = "opportunity"
	SpaceLiability   SpaceType = "liability"
	SpaceCharity     SpaceType = "charity"
	SpaceOffer       SpaceType = "offer"
	SpacePayday      SpaceType = "payday"
	SpaceDownsize    SpaceType = "downsize"
	SpaceDream       SpaceType = "dream"
	SpaceChild       SpaceType = "child"
)

type BoardSpace struct {
	Type  SpaceType `json:"type"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}
