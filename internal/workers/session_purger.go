// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/store"
)

// SessionPurger periodically deletes expired sessions so the sessions table
// does not grow with every login.
type SessionPurger struct {
	sessions store.SessionRepository
	interval time.Duration

	logger *logger.Logger
}

func NewSessionPurger(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionPurger {
	return &SessionPurger{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run purges once on start and then on every tick until ctx is cancelled.
func (p *SessionPurger) Run(ctx context.Context) {
	ctx = p.logger.WithContext(ctx)
	p.logger.Info().Dur("interval", p.interval).Msg("session purger started")

	p.purge(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("session purger stopped")
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *SessionPurger) purge(ctx context.Context) {
	removed, err := p.sessions.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Msg("error purging expired sessions")
		}
		return
	}
	if removed > 0 {
		p.logger.Debug().Int64("removed", removed).Msg("expired sessions purged")
	}
}
