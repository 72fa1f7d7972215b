// Package api holds the JSON envelopes shared by every HTTP handler.
package api

// MessageResponse is the body of every plain confirmation and every error.
// The storefront client shows Message to the user verbatim.
type MessageResponse struct {
	Message string `json:"mensaje"`
}
