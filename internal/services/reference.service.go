package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"envportal/internal/logger"
)

// referenceSuffixSpace is the size of the 4-digit suffix space per day.
const referenceSuffixSpace = 10000

// referenceRandomAttempts bounds the random draws before falling back to a
// linear scan of the suffix space.
const referenceRandomAttempts = 1000

// ErrReferenceExhausted means every suffix for the current date is taken.
var ErrReferenceExhausted = errors.New("reference numbers exhausted for the day")

// ReferenceService issues human-readable reference numbers of the form
// FG20260901 + 4-digit suffix. The issued set guarantees process-local
// uniqueness even when the random suffix space collides, and allocation
// fails cleanly once a day's space is used up instead of spinning.
type ReferenceService struct {
	mu     sync.Mutex
	issued map[string]struct{}
	rand   *rand.Rand
	now    func() time.Time
	log    logger.Logger
}

func NewReferenceService() *ReferenceService {
	return &ReferenceService{
		issued: make(map[string]struct{}),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		log:    logger.New("ReferenceService"),
	}
}

// Generate returns a fresh reference number with the given prefix. Random
// draws come first; when the space is contended a linear scan finds any
// remaining suffix, so Generate only errors when the day's space is full.
func (s *ReferenceService) Generate(prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.now().Format("20060102")
	for i := 0; i < referenceRandomAttempts; i++ {
		ref := fmt.Sprintf("%s%s%04d", prefix, date, s.rand.Intn(referenceSuffixSpace))
		if _, taken := s.issued[ref]; !taken {
			s.issued[ref] = struct{}{}
			return ref, nil
		}
	}

	for suffix := 0; suffix < referenceSuffixSpace; suffix++ {
		ref := fmt.Sprintf("%s%s%04d", prefix, date, suffix)
		if _, taken := s.issued[ref]; !taken {
			s.issued[ref] = struct{}{}
			return ref, nil
		}
	}

	s.log.Warn("reference suffix space exhausted", "prefix", prefix, "date", date)
	return "", ErrReferenceExhausted
}

// Release frees a reference that was generated but never persisted, e.g.
// when the surrounding transaction rolled back.
func (s *ReferenceService) Release(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.issued, ref)
}
