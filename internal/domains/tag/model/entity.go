package model

// TagsResponse is the {"tags": [...]} envelope.
type TagsResponse struct {
	Tags []string `json:"tags"`
}
