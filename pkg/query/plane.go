// Package query resolves geometry references for feature builders.
// A reference is either one of the three standard planes, whose
// deterministic identifiers are service-assigned and must be fetched,
// or derived geometry produced by an earlier feature, which is encoded
// into an opaque query token replicated from observed working payloads.
package query

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownPlane is returned for a plane value outside the standard
// three.
var ErrUnknownPlane = errors.New("query: unknown standard plane")

// Plane names one of the three standard reference planes every part
// studio starts with.
type Plane int

const (
	Front Plane = iota
	Top
	Right
)

func (p Plane) String() string {
	switch p {
	case Front:
		return "Front"
	case Top:
		return "Top"
	case Right:
		return "Right"
	default:
		return "unknown"
	}
}

// PlaneSource fetches the service-assigned deterministic identifier of
// a standard plane. Identifiers are stable within one
// document/workspace/element but are not predictable, so they must be
// looked up rather than computed.
type PlaneSource interface {
	PlaneID(ctx context.Context, plane Plane) (string, error)
}

// Session caches plane identifiers for the lifetime of one
// document/workspace/element scope. Each plane is fetched at most once
// per session; concurrent builds sharing a session serialize on the
// cache mutex.
type Session struct {
	id     string
	source PlaneSource
	log    *zap.Logger

	mu     sync.Mutex
	planes map[Plane]string
}

// NewSession starts a resolution session against the given source.
// A nil logger disables logging.
func NewSession(source PlaneSource, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		id:     uuid.NewString(),
		source: source,
		log:    log,
		planes: make(map[Plane]string),
	}
}

// ID returns the session's identity, used to correlate log lines
// across builds sharing one cache.
func (s *Session) ID() string { return s.id }

// PlaneID returns the deterministic identifier for a standard plane,
// fetching it on first use and serving the cache thereafter.
func (s *Session) PlaneID(ctx context.Context, plane Plane) (string, error) {
	switch plane {
	case Front, Top, Right:
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownPlane, plane)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.planes[plane]; ok {
		return id, nil
	}

	id, err := s.source.PlaneID(ctx, plane)
	if err != nil {
		return "", fmt.Errorf("query: fetch %s plane: %w", plane, err)
	}
	s.planes[plane] = id
	s.log.Debug("cached standard plane",
		zap.String("session", s.id),
		zap.Stringer("plane", plane),
		zap.String("id", id))
	return id, nil
}
