package models

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
