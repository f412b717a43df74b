package models

// TokenPayload is verified content of admin auth token
type TokenPayload struct {
	Login string
}
