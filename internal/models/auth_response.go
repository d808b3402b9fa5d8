package models

// LogoutPayload is returned by the logout mutation
type LogoutPayload struct {
	Message string `json:"message"`
}
