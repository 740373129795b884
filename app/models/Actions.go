package models

// Request bodies for the engine action endpoints. The acting player comes
// from the route.

type MoveDto struct {
	Spaces int `json:"spaces" validate:"min=0"`
}

type PaydayDto struct {
	Multiplier int `json:"multiplier" validate:"min=1"`
}

type DreamDto struct {
	DreamId string `json:"dreamId" validate:"required"`
}

type CardDto struct {
	CardId string `json:"cardId" validate:"required"`
	Units  int    `json:"units" validate:"min=0"`
}

type AssetDto struct {
	Type   AssetType `json:"type" validate:"required,oneof=stock realEstate business coin personal"`
	Name   string    `json:"name" validate:"required"`
	Value  int       `json:"value" validate:"min=0"`
	Income *int      `json:"income"`
}

type LiabilityDto struct {
	Type    LiabilityType `json:"type" validate:"required,oneof=loan credit mortgage"`
	Name    string        `json:"name" validate:"required"`
	Amount  int           `json:"amount" validate:"min=0"`
	Payment int           `json:"payment" validate:"min=0"`
}

// TurnDto carries an optional roll; zero means the server rolls one die.
type TurnDto struct {
	Roll int `json:"roll" validate:"min=0,max=12"`
}
