package query

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chamferlabs/ftree/pkg/wire"
)

// ErrUnresolvableReference is returned when a derived reference's
// entity/chain combination matches no known encoding pattern. This is
// terminal; retrying with the same inputs cannot succeed.
var ErrUnresolvableReference = errors.New("query: no known encoding for reference")

// ErrUnresolved is returned when a reference that was never resolved
// is converted to wire form.
var ErrUnresolved = errors.New("query: reference not resolved")

// EntityType tags the kind of geometry a derived reference points at.
type EntityType int

const (
	Edge EntityType = iota
	Face
)

func (t EntityType) String() string {
	switch t {
	case Edge:
		return "EDGE"
	case Face:
		return "FACE"
	default:
		return "unknown"
	}
}

// Step is one operation applied to a referenced entity after its
// owning feature created it. The set is closed to the shapes observed
// in working payloads.
type Step int

const (
	// StepThicken marks the swept face a thicken operation produces
	// from a referenced edge.
	StepThicken Step = iota
)

func (s Step) String() string {
	switch s {
	case StepThicken:
		return "THICKEN"
	default:
		return "unknown"
	}
}

// Reference is a resolvable pointer to geometry. Implementations are
// StandardPlane and Derived.
type Reference interface {
	// Resolved reports whether the reference carries everything the
	// wire conversion needs.
	Resolved() bool

	referenceNode()
}

// StandardPlane references one of the three default planes. ID is
// populated by resolution.
type StandardPlane struct {
	Plane Plane
	ID    string
}

func (StandardPlane) referenceNode() {}

// Resolved reports whether the plane identifier has been fetched.
func (p StandardPlane) Resolved() bool { return p.ID != "" }

// Derived references geometry created by an earlier feature, possibly
// transformed by later operations. SourceFeatureID is the owning
// feature, EntityID the identifier that feature's builder allocated,
// and Chain the operations applied since. Token is populated by
// resolution; a Derived with an empty Token is not submittable.
type Derived struct {
	SourceFeatureID string
	EntityID        string
	EntityType      EntityType
	Chain           []Step
	Token           string
}

func (Derived) referenceNode() {}

// Resolved reports whether the query token has been encoded.
func (d Derived) Resolved() bool { return d.Token != "" }

// Resolver resolves references within one session. Standard planes go
// through the session's plane cache; derived references go through the
// token encoder.
type Resolver struct {
	session *Session
}

// NewResolver returns a resolver bound to a session.
func NewResolver(session *Session) *Resolver {
	return &Resolver{session: session}
}

// Resolve returns a copy of the reference with its identifier or token
// populated. Already-resolved references pass through unchanged.
func (r *Resolver) Resolve(ctx context.Context, ref Reference) (Reference, error) {
	switch ref := ref.(type) {
	case StandardPlane:
		if ref.Resolved() {
			return ref, nil
		}
		id, err := r.session.PlaneID(ctx, ref.Plane)
		if err != nil {
			return nil, err
		}
		ref.ID = id
		return ref, nil
	case Derived:
		if ref.Resolved() {
			return ref, nil
		}
		token, err := EncodeToken(ref)
		if err != nil {
			return nil, err
		}
		ref.Token = token
		r.session.log.Debug("encoded derived reference",
			zap.String("session", r.session.id),
			zap.String("source", ref.SourceFeatureID),
			zap.String("entity", ref.EntityID))
		return ref, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnresolvableReference, ref)
	}
}

// ToQuery converts a resolved reference into the query form a feature
// parameter embeds: a deterministic-identifier query for planes, a
// script query carrying the encoded token for derived geometry.
func ToQuery(ref Reference) (wire.Query, error) {
	if !ref.Resolved() {
		return nil, fmt.Errorf("%w: %T", ErrUnresolved, ref)
	}
	switch ref := ref.(type) {
	case StandardPlane:
		return wire.Deterministic(ref.ID), nil
	case Derived:
		return wire.Script(fmt.Sprintf("query = qTransient(%q);", ref.Token)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnresolvableReference, ref)
	}
}
