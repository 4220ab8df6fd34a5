package storage

type sessionData struct {
	Values map[string]string `json:"values"`
}
