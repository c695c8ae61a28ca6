package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"blogcms/api/internal/repository"
)

// Scheduler prunes expired sessions and token rows. Blacklisted refresh
// tokens are kept until they expire so verification can keep refusing them.
type Scheduler struct {
	cron     *cron.Cron
	sessions *repository.SessionRepository
	tokens   *repository.TokenRepository
	log      zerolog.Logger
}

func NewScheduler(sessions *repository.SessionRepository, tokens *repository.TokenRepository, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		sessions: sessions,
		tokens:   tokens,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.purgeExpired); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits briefly for a running purge to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) purgeExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sessions, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("purge expired sessions failed")
	}

	tokens, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("purge expired tokens failed")
	}

	s.log.Info().
		Int64("sessions", sessions).
		Int64("tokens", tokens).
		Msg("expired auth records purged")
}
