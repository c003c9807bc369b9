package request

// CreateGameRequest is the request body for creating a game. Zero values use the server defaults.
type CreateGameRequest struct {
	BoardSize int `json:"board_size,omitempty"`
	RackSize  int `json:"rack_size,omitempty"`
}

// PlaceTileRequest is the request body for placing a tile
type PlaceTileRequest struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// RegenerateRequest is the request body for resizing the board
type RegenerateRequest struct {
	BoardSize int `json:"board_size"`
}
