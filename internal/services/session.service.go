package services

import (
	"context"
	"time"

	"envportal/config"
	"envportal/internal/database"
	"envportal/internal/logger"
	. "envportal/internal/models"

	"github.com/google/uuid"
)

// SessionService owns bearer sessions in the session cache. Tokens expire
// via Valkey TTL; the stored ExpiresAt is a belt-and-suspenders check.
type SessionService struct {
	cache database.CacheClient
	ttl   time.Duration
	log   logger.Logger
}

func NewSessionService(db database.DB, config config.Config) *SessionService {
	ttl := time.Duration(config.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		cache: db.Cache.Session,
		ttl:   ttl,
		log:   logger.New("SessionService"),
	}
}

func (s *SessionService) Create(ctx context.Context, kind SessionKind, subjectID string, role AdminRole) (Session, error) {
	log := s.log.Function("Create")

	session := Session{
		Token:     uuid.NewString(),
		Kind:      kind,
		SubjectID: subjectID,
		Role:      role,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := database.NewCacheBuilder(s.cache, session.Token).
		WithStruct(session).
		WithTTL(s.ttl).
		WithContext(ctx).
		Set(); err != nil {
		return Session{}, log.Err("failed to store session", err, "kind", kind, "subjectID", subjectID)
	}

	return session, nil
}

func (s *SessionService) Get(ctx context.Context, token string) (Session, bool, error) {
	log := s.log.Function("Get")

	var session Session
	found, err := database.NewCacheBuilder(s.cache, token).
		WithContext(ctx).
		Get(&session)
	if err != nil {
		return Session{}, false, log.Err("failed to read session", err)
	}
	if !found || session.Expired(time.Now()) {
		return Session{}, false, nil
	}

	return session, true, nil
}

func (s *SessionService) Destroy(ctx context.Context, token string) error {
	log := s.log.Function("Destroy")

	if err := database.NewCacheBuilder(s.cache, token).
		WithContext(ctx).
		Delete(); err != nil {
		return log.Err("failed to destroy session", err)
	}
	return nil
}
