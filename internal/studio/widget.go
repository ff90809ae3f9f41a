// Package studio implements the upload and generate widget: image selection,
// prompt entry, submission to a generation backend and the result view.
package studio

import (
	"context"
	"log/slog"
	"sync"

	"github.com/juson/ghibliai/internal/models"
)

// DefaultErrorMessage is shown when a generation fails and no localized
// message was configured.
const DefaultErrorMessage = "Failed to generate image. Please try again."

// Generator produces an image from a prompt and/or a source image.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}

// Widget serializes state transitions and runs generations in the background.
type Widget struct {
	gen      Generator
	errorMsg string
	onChange func(State)

	mu    sync.Mutex
	state State
}

type WidgetOption func(*Widget)

// WithErrorMessage sets the message displayed for any failed generation.
func WithErrorMessage(msg string) WidgetOption {
	return func(w *Widget) { w.errorMsg = msg }
}

// WithOnChange registers a listener called after every transition.
func WithOnChange(fn func(State)) WidgetOption {
	return func(w *Widget) { w.onChange = fn }
}

func NewWidget(gen Generator, opts ...WidgetOption) *Widget {
	w := &Widget{gen: gen, errorMsg: DefaultErrorMessage}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Widget) apply(fn func(State) (State, error)) (State, error) {
	w.mu.Lock()
	next, err := fn(w.state)
	if err == nil {
		w.state = next
	}
	current := w.state
	w.mu.Unlock()

	if err == nil && w.onChange != nil {
		w.onChange(current)
	}
	return current, err
}

func (w *Widget) SelectFile(f File) error {
	_, err := w.apply(func(s State) (State, error) { return s.SelectFile(f) })
	return err
}

func (w *Widget) SetPreview(dataURL string) {
	w.apply(func(s State) (State, error) { return s.WithPreview(dataURL), nil })
}

func (w *Widget) SetPrompt(prompt string) {
	w.apply(func(s State) (State, error) { return s.SetPrompt(prompt), nil })
}

func (w *Widget) TryAnother() {
	w.apply(func(s State) (State, error) { return s.TryAnother(), nil })
}

// Submit starts a generation. The returned channel yields the final state
// once the backend answers and is then closed. Only one generation runs at a
// time; a second Submit while one is pending returns ErrCannotSubmit.
func (w *Widget) Submit(ctx context.Context) (<-chan State, error) {
	started, err := w.apply(func(s State) (State, error) { return s.Begin() })
	if err != nil {
		return nil, err
	}

	done := make(chan State, 1)
	go func() {
		defer close(done)
		res, err := w.gen.Generate(ctx, started.Request())
		var final State
		if err != nil || res == nil || !res.Success || res.ImageURL == "" {
			if err != nil {
				slog.Error("Image generation failed", "error", err)
			} else {
				slog.Error("Image generation returned no image")
			}
			final, _ = w.apply(func(s State) (State, error) { return s.Fail(w.errorMsg), nil })
		} else {
			final, _ = w.apply(func(s State) (State, error) { return s.Succeed(res.ImageURL), nil })
		}
		done <- final
	}()
	return done, nil
}

// Generate submits and waits for the outcome.
func (w *Widget) Generate(ctx context.Context) (State, error) {
	done, err := w.Submit(ctx)
	if err != nil {
		return w.State(), err
	}
	return <-done, nil
}
