package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/sant0-9/pix3lprompt/internal/config"
	"github.com/sant0-9/pix3lprompt/internal/llm"
)

// ErrBusy is returned when an AI action is already running
var ErrBusy = errors.New("an AI request is already in progress")

// Select picks the provider for the AI settings. Without a usable
// configuration it returns the local rules and makes no network call.
func Select(cfg config.AIConfig) Provider {
	if !cfg.Ready() {
		return NewLocalRules()
	}

	client, err := llm.NewProvider(cfg)
	if err != nil {
		return NewLocalRules()
	}

	name := cfg.Provider
	if info := config.GetProvider(cfg.Provider); info != nil {
		name = info.Name
	}
	model := cfg.Model
	if model == "" {
		if info := config.GetProvider(cfg.Provider); info != nil {
			model = info.DefaultModel
		}
	}
	return NewRemote(name, client, model)
}

// Outcome is the result of a service call. Err holds the remote failure
// when the local rules filled in (FellBack is then true).
type Outcome struct {
	Provider    string
	Text        string
	Variations  []string
	Suggestions []Suggestion
	Err         error
	FellBack    bool
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRateLimit paces remote calls to one per interval with a small burst
func WithRateLimit(interval time.Duration) Option {
	return func(s *Service) {
		s.limiter = rate.NewLimiter(rate.Every(interval), 2)
	}
}

// Service runs AI actions with a local fallback. Only one action runs at a
// time; a trigger while another is in flight gets ErrBusy. Results of a
// finished call are always returned, even if the editor moved on.
type Service struct {
	provider Provider
	local    *LocalRules
	busy     *semaphore.Weighted
	limiter  *rate.Limiter
	logger   *slog.Logger
}

func NewService(provider Provider, opts ...Option) *Service {
	local := NewLocalRules()
	if provider == nil {
		provider = local
	}

	s := &Service{
		provider: provider,
		local:    local,
		busy:     semaphore.NewWeighted(1),
		limiter:  rate.NewLimiter(rate.Every(time.Second), 2),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// IsLocal reports whether no remote provider is configured
func (s *Service) IsLocal() bool {
	_, ok := s.provider.(*LocalRules)
	return ok
}

// Busy reports whether an action is in flight
func (s *Service) Busy() bool {
	if !s.busy.TryAcquire(1) {
		return true
	}
	s.busy.Release(1)
	return false
}

// Ping checks the remote provider. The local rules are always reachable.
func (s *Service) Ping(ctx context.Context) error {
	if p, ok := s.provider.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *Service) Optimize(ctx context.Context, prompt string, pc PromptContext) (Outcome, error) {
	if !s.busy.TryAcquire(1) {
		return Outcome{}, ErrBusy
	}
	defer s.busy.Release(1)

	out := Outcome{Provider: s.provider.Name()}
	err := s.call(ctx, "optimize", func(ctx context.Context) error {
		var err error
		out.Text, err = s.provider.Optimize(ctx, prompt, pc)
		return err
	})
	if err != nil {
		out.Err = err
		out.FellBack = true
		out.Provider = s.local.Name()
		out.Text = s.local.optimize(prompt, pc)
	}
	return out, nil
}

func (s *Service) GenerateVariations(ctx context.Context, prompt string, count int, pc PromptContext) (Outcome, error) {
	if !s.busy.TryAcquire(1) {
		return Outcome{}, ErrBusy
	}
	defer s.busy.Release(1)

	out := Outcome{Provider: s.provider.Name()}
	err := s.call(ctx, "variations", func(ctx context.Context) error {
		var err error
		out.Variations, err = s.provider.GenerateVariations(ctx, prompt, count, pc)
		return err
	})
	if err != nil {
		out.Err = err
		out.FellBack = true
		out.Provider = s.local.Name()
		out.Variations = s.local.variations(prompt, count)
	}
	return out, nil
}

func (s *Service) SuggestImprovements(ctx context.Context, prompt string, rating int, notes string) (Outcome, error) {
	if !s.busy.TryAcquire(1) {
		return Outcome{}, ErrBusy
	}
	defer s.busy.Release(1)

	out := Outcome{Provider: s.provider.Name()}
	err := s.call(ctx, "suggest", func(ctx context.Context) error {
		var err error
		out.Suggestions, err = s.provider.SuggestImprovements(ctx, prompt, rating, notes)
		return err
	})
	if err != nil {
		out.Err = err
		out.FellBack = true
		out.Provider = s.local.Name()
		out.Suggestions = s.local.suggest(prompt, rating, notes)
	}
	return out, nil
}

// call runs fn against the configured provider, pacing remote requests
func (s *Service) call(ctx context.Context, action string, fn func(context.Context) error) error {
	start := time.Now()

	if !s.IsLocal() {
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warn("ai request not sent", "action", action, "provider", s.provider.Name(), "error", err)
			return err
		}
	}

	err := fn(ctx)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Warn("ai request failed, using local rules",
			"action", action,
			"provider", s.provider.Name(),
			"duration", elapsed,
			"error", err,
		)
		return err
	}

	s.logger.Debug("ai request done", "action", action, "provider", s.provider.Name(), "duration", elapsed)
	return nil
}
