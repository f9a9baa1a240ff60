package game

// State is the read-only view of one session handed to the presentation layer.
type State struct {
	ID            string     `json:"id,omitempty"`
	BoardSize     int        `json:"board_size"`
	Board         [][]string `json:"board"` // [y][x]: "B", "W" or ""
	CurrentPlayer string     `json:"current_player"`
	PlayerColor   string     `json:"player_color"`
	BotColor      string     `json:"bot_color"`
	GameOver      bool       `json:"game_over"`
	Result        string     `json:"result,omitempty"`
	LastCaptures  int        `json:"last_captures"`
	Passes        int        `json:"passes"`
	Moves         []Move     `json:"moves"`
	Message       string     `json:"message,omitempty"`
}

type GameCreateRequest struct {
	BoardSize   int    `json:"board_size"`
	PlayerColor string `json:"player_color"`
}

type GameCreateResponse struct {
	ID    string `json:"id"`
	State State  `json:"state"`
}

type ColorRequest struct {
	Color string `json:"color"`
}
