package studio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/juson/ghibliai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	mu      sync.Mutex
	calls   []models.GenerationRequest
	release chan struct{}
	result  *models.GenerationResult
	err     error
}

func (g *stubGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	g.mu.Unlock()
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return g.result, g.err
}

func TestWidgetSubmitSuccess(t *testing.T) {
	gen := &stubGenerator{result: &models.GenerationResult{Success: true, ImageURL: "https://example.com/x.jpg"}}

	var seen []Phase
	var mu sync.Mutex
	w := NewWidget(gen, WithOnChange(func(s State) {
		mu.Lock()
		seen = append(seen, s.Phase)
		mu.Unlock()
	}))
	w.SetPrompt("totoro in the rain")

	final, err := w.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Succeeded, final.Phase)
	assert.Equal(t, "https://example.com/x.jpg", final.ResultURL)
	assert.Equal(t, []models.GenerationRequest{{Prompt: "totoro in the rain"}}, gen.calls)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Phase{Idle, Generating, Succeeded}, seen)
}

func TestWidgetSubmitFailureUsesGenericMessage(t *testing.T) {
	gen := &stubGenerator{err: &ServerError{Status: 500, Message: "internal detail"}}
	w := NewWidget(gen, WithErrorMessage("生成图片失败"))
	w.SetPrompt("x")

	final, err := w.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Failed, final.Phase)
	assert.Equal(t, "生成图片失败", final.Err)
	assert.Equal(t, "x", final.Prompt)
}

func TestWidgetUnsuccessfulResultFails(t *testing.T) {
	gen := &stubGenerator{result: &models.GenerationResult{Success: false}}
	w := NewWidget(gen)
	w.SetPrompt("x")

	final, err := w.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Failed, final.Phase)
}

func TestWidgetRejectsEmptySubmit(t *testing.T) {
	gen := &stubGenerator{}
	w := NewWidget(gen)

	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrCannotSubmit)
	assert.Empty(t, gen.calls)
}

func TestWidgetSingleFlight(t *testing.T) {
	gen := &stubGenerator{
		release: make(chan struct{}),
		result:  &models.GenerationResult{Success: true, ImageURL: "u"},
	}
	w := NewWidget(gen)
	w.SetPrompt("x")

	done, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, w.State().IsGenerating())

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrCannotSubmit)

	close(gen.release)
	final := <-done
	assert.Equal(t, Succeeded, final.Phase)
	assert.Len(t, gen.calls, 1)
}

func TestWidgetCancelledContext(t *testing.T) {
	gen := &stubGenerator{release: make(chan struct{})}
	w := NewWidget(gen)
	w.SetPrompt("x")

	ctx, cancel := context.WithCancel(context.Background())
	done, err := w.Submit(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case final := <-done:
		assert.Equal(t, Failed, final.Phase)
	case <-time.After(2 * time.Second):
		t.Fatal("generation did not stop after cancel")
	}
}

func TestHTTPGenerator(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     any
		wantURL  string
		checkErr func(t *testing.T, err error)
	}{
		{
			name:    "success",
			status:  http.StatusOK,
			body:    models.GenerationResult{Success: true, ImageURL: "https://example.com/r.jpg"},
			wantURL: "https://example.com/r.jpg",
		},
		{
			name:   "validation error",
			status: http.StatusBadRequest,
			body:   models.ErrorResponse{Error: "Either prompt or image is required"},
			checkErr: func(t *testing.T, err error) {
				var se *ServerError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusBadRequest, se.Status)
				assert.Equal(t, "Either prompt or image is required", se.Message)
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   models.ErrorResponse{Error: "boom"},
			checkErr: func(t *testing.T, err error) {
				var se *ServerError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusInternalServerError, se.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.GenerationRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			gen := NewHTTPGenerator(srv.URL, 5*time.Second)
			res, err := gen.Generate(context.Background(), models.GenerationRequest{Prompt: "hello"})
			assert.Equal(t, "hello", got.Prompt)
			if tt.checkErr != nil {
				require.Error(t, err)
				tt.checkErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, tt.wantURL, res.ImageURL)
		})
	}
}

func TestHTTPGeneratorTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPGenerator(url, time.Second).Generate(context.Background(), models.GenerationRequest{Prompt: "x"})
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}
