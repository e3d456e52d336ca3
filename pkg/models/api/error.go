package api

type Error struct {
	Message string `json:"error"`
}
