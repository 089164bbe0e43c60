package model

// Profile is a user as seen by the viewer.
type Profile struct {
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}

// ProfileResponse is the {"profile": {...}} envelope.
type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}
