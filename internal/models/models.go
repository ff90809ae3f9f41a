package models

// GenerationRequest is the body accepted by the generate endpoint.
// Image holds a data URL or bare base64 payload.
type GenerationRequest struct {
	Prompt string `json:"prompt,omitempty"`
	Image  string `json:"image,omitempty"`
}

// Empty reports whether neither input was supplied.
func (r GenerationRequest) Empty() bool {
	return r.Prompt == "" && r.Image == ""
}

// GenerationResult is the success body of the generate endpoint.
type GenerationResult struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

// ErrorResponse is the failure body of the generate endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
