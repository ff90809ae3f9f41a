package studio

import (
	"errors"
	"strings"

	"github.com/juson/ghibliai/internal/models"
)

var (
	// ErrCannotSubmit is returned when submit is requested without input or
	// while a generation is in flight.
	ErrCannotSubmit = errors.New("nothing to submit or generation already in progress")
	// ErrNotImage is returned when a selected file is not an image.
	ErrNotImage = errors.New("selected file is not an image")
)

type Phase int

const (
	Idle Phase = iota
	Generating
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the upload/generate widget state. Transitions return a new value
// and never modify the receiver.
type State struct {
	File           *File
	PreviewDataURL string
	Prompt         string
	Phase          Phase
	ResultURL      string
	Err            string
}

func (s State) IsGenerating() bool {
	return s.Phase == Generating
}

func (s State) HasInput() bool {
	return s.File != nil || s.PreviewDataURL != "" || strings.TrimSpace(s.Prompt) != ""
}

// CanSubmit reports whether the submit control is enabled.
func (s State) CanSubmit() bool {
	return s.HasInput() && !s.IsGenerating()
}

// SelectFile validates f as an image and stores it with its preview.
func (s State) SelectFile(f File) (State, error) {
	if !f.IsImage() {
		return s, ErrNotImage
	}
	s.File = &f
	s.PreviewDataURL = f.DataURL()
	return s, nil
}

// WithPreview restores a previously encoded image, e.g. from a form field.
func (s State) WithPreview(dataURL string) State {
	s.File = nil
	s.PreviewDataURL = dataURL
	return s
}

func (s State) SetPrompt(prompt string) State {
	s.Prompt = prompt
	return s
}

// Begin starts a generation, clearing any previous outcome.
func (s State) Begin() (State, error) {
	if !s.CanSubmit() {
		return s, ErrCannotSubmit
	}
	s.Phase = Generating
	s.Err = ""
	s.ResultURL = ""
	return s, nil
}

// Succeed records the generated image. Ignored unless a generation is in flight.
func (s State) Succeed(url string) State {
	if s.Phase != Generating {
		return s
	}
	s.Phase = Succeeded
	s.ResultURL = url
	return s
}

// Fail records msg and keeps the input for a retry. Ignored unless a
// generation is in flight.
func (s State) Fail(msg string) State {
	if s.Phase != Generating {
		return s
	}
	if msg == "" {
		msg = DefaultErrorMessage
	}
	s.Phase = Failed
	s.Err = msg
	return s
}

// TryAnother discards the result and input and returns to Idle.
func (s State) TryAnother() State {
	if s.Phase == Generating {
		return s
	}
	return State{}
}

// Download returns the URL of the generated image. Nothing is fetched.
func (s State) Download() (string, bool) {
	return s.ResultURL, s.Phase == Succeeded
}

// Request builds the payload sent to the generation endpoint.
func (s State) Request() models.GenerationRequest {
	return models.GenerationRequest{
		Prompt: s.Prompt,
		Image:  s.PreviewDataURL,
	}
}
