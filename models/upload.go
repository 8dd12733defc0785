package models

// UploadResult is the response shape of the upload endpoint. Provider tells
// the caller which storage backend actually served the request.
type UploadResult struct {
	URL      string `json:"url"`
	Path     string `json:"path,omitempty"`
	PublicID string `json:"publicId,omitempty"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Provider string `json:"provider"`
}
