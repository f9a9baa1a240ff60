package game

// @name Move
// Coordinates are SGF letters; a pass has empty coordinates.
type Move struct {
	Color       string `json:"color"`
	Coordinates string `json:"coordinates"`
}

// @name MoveRequest
type MoveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// @name BotMoveResponse
type BotMoveResponse struct {
	BotMove Move  `json:"bot_move"`
	State   State `json:"state"`
}
