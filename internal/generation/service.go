package generation

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/juson/ghibliai/internal/models"
)

// ErrValidation is returned when a request carries neither a prompt nor an image.
var ErrValidation = errors.New("Either prompt or image is required")

// SampleImages are the stock results handed out instead of a real generation.
var SampleImages = []string{
	"https://images.unsplash.com/photo-1513542789411-b6a5d4f31634?w=800",
	"https://images.unsplash.com/photo-1566618501825-baffef30508b?w=800",
	"https://images.unsplash.com/photo-1504198266287-1659872e6590?w=800",
}

// Service emulates an image generation backend.
type Service struct {
	delay  time.Duration
	images []string

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

// WithDelay sets the artificial latency applied to every generation.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithSeed makes the image selection deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Service) { s.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithRand injects the random source used for image selection.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

// WithImages replaces the stock image list.
func WithImages(images []string) Option {
	return func(s *Service) { s.images = images }
}

func NewService(opts ...Option) *Service {
	s := &Service{
		delay:  2 * time.Second,
		images: SampleImages,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return s
}

// Generate validates the request, waits for the configured delay and returns
// one of the stock images. Repeated identical requests may return different images.
func (s *Service) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	if req.Empty() {
		return nil, ErrValidation
	}
	if len(s.images) == 0 {
		return nil, errors.New("no sample images configured")
	}

	slog.Debug("Generating image", "prompt_length", len(req.Prompt), "image_length", len(req.Image), "delay", s.delay)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	url := s.pick()
	slog.Info("Image generated", "image_url", url)

	return &models.GenerationResult{
		Success:  true,
		ImageURL: url,
	}, nil
}

func (s *Service) pick() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.images[s.rng.IntN(len(s.images))]
}

// IsSample reports whether url is one of the stock images.
func IsSample(url string) bool {
	for _, img := range SampleImages {
		if img == url {
			return true
		}
	}
	return false
}
