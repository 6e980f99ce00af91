package match

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/oggyb/matching-service/internal/app"
	"github.com/oggyb/matching-service/internal/db"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/events"
	"github.com/oggyb/matching-service/internal/matchstate"
	"github.com/oggyb/matching-service/internal/repository"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

var tracer = otel.Tracer("github.com/oggyb/matching-service/internal/service/match")

// Service implements the match workflow between two users:
// REQUESTED -> MATCHED | DECLINED. The pair is unordered everywhere.
type Service struct {
	appCtx    *app.AppContext
	matchRepo *repository.MatchRepository
}

// NewMatchService creates a new match service with dependencies from AppContext.
func NewMatchService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		matchRepo: repository.NewMatchRepository(appCtx.DB),
	}
}

// Request opens a relationship between a and b in REQUESTED state.
//
// Behavior:
//   - a and b must be non-blank and different.
//   - status, when supplied, must be REQUESTED.
//   - An existing relationship in either order → AlreadyExists.
func (s *Service) Request(ctx context.Context, a, b string, status *matchstate.Status) (*db.Match, error) {
	ctx, span := s.start(ctx, "match.Request", a, b)
	defer span.End()

	s.appCtx.Logger.Debug("Request called", "partner_id_1", a, "partner_id_2", b)

	if err := validatePair(a, b); err != nil {
		return nil, s.finish(span, err)
	}
	if status != nil && *status != matchstate.Requested {
		return nil, s.finish(span, svcErr.Invalid("a new match must start as %s, got %s", matchstate.Requested, *status))
	}

	m := &db.Match{PartnerID1: a, PartnerID2: b, Status: matchstate.Requested}
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.matchRepo.WithTx(tx)
		if _, err := repo.FindPair(ctx, a, b); err == nil {
			return exists(a, b)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repo.Create(ctx, m)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = exists(a, b)
	}
	if err != nil {
		return nil, s.finish(span, s.storage("request", err))
	}

	s.publish(ctx, events.MatchRequested, m)
	return m, s.finish(span, nil)
}

// Accept moves a REQUESTED relationship to MATCHED.
func (s *Service) Accept(ctx context.Context, a, b string) (*db.Match, error) {
	return s.transition(ctx, "match.Accept", a, b, matchstate.Matched, events.MatchAccepted)
}

// Decline moves a REQUESTED relationship to DECLINED.
func (s *Service) Decline(ctx context.Context, a, b string) (*db.Match, error) {
	return s.transition(ctx, "match.Decline", a, b, matchstate.Declined, events.MatchDeclined)
}

// transition validates against the current status and applies the change
// with a compare-and-set, so two racing transitions cannot both win.
func (s *Service) transition(
	ctx context.Context,
	name, a, b string,
	to matchstate.Status,
	eventType string,
) (*db.Match, error) {
	ctx, span := s.start(ctx, name, a, b)
	defer span.End()
	span.SetAttributes(attribute.String("match.target", to.String()))

	s.appCtx.Logger.Debug("transition called", "partner_id_1", a, "partner_id_2", b, "to", to)

	if err := validatePair(a, b); err != nil {
		return nil, s.finish(span, err)
	}

	var m *db.Match
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.matchRepo.WithTx(tx)
		current, err := repo.FindPair(ctx, a, b)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return svcErr.Missing("no match between %s and %s", a, b)
		}
		if err != nil {
			return err
		}
		if err := current.Status.Check(to); err != nil {
			return err
		}

		ok, err := repo.CompareAndSetStatus(ctx, a, b, current.Status, to)
		if err != nil {
			return err
		}
		if !ok {
			return svcErr.Transition("match between %s and %s changed concurrently", a, b)
		}

		m, err = repo.FindPair(ctx, a, b)
		return err
	})
	if err != nil {
		return nil, s.finish(span, s.storage("transition", err))
	}

	s.publish(ctx, eventType, m)
	return m, s.finish(span, nil)
}

// Get returns the relationship between a and b in either order.
func (s *Service) Get(ctx context.Context, a, b string) (*db.Match, error) {
	if err := validatePair(a, b); err != nil {
		return nil, err
	}
	m, err := s.matchRepo.FindPair(ctx, a, b)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.Missing("no match between %s and %s", a, b)
	}
	if err != nil {
		return nil, s.storage("get", err)
	}
	return m, nil
}

// ListForUser returns relationships involving userID, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string, status *matchstate.Status, limit int) ([]db.Match, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, svcErr.Invalid("user_id is required")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	matches, err := s.matchRepo.ListByUser(ctx, userID, status, limit)
	if err != nil {
		return nil, s.storage("list", err)
	}
	return matches, nil
}

func (s *Service) start(ctx context.Context, name, a, b string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("match.partner_id_1", a),
		attribute.String("match.partner_id_2", b),
	))
}

func (s *Service) finish(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, svcErr.KindOf(err).String())
	}
	return err
}

func (s *Service) storage(op string, err error) error {
	if svcErr.KindOf(err) != svcErr.StorageFailure {
		return err
	}
	s.appCtx.Logger.Error("match storage failure", "op", op, "err", err)
	return svcErr.Storage(err)
}

// publish runs after commit; a broker failure is logged and never undoes the write.
func (s *Service) publish(ctx context.Context, eventType string, m *db.Match) {
	lo, hi := db.CanonicalPair(m.PartnerID1, m.PartnerID2)
	e, err := events.New(eventType, lo+":"+hi, m, s.appCtx.Now())
	if err == nil {
		err = s.appCtx.Events.Publish(ctx, e)
	}
	if err != nil {
		s.appCtx.Logger.Warn("failed to publish match event", "type", eventType, "err", err)
	}
}

func validatePair(a, b string) error {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return svcErr.Invalid("partner_id_1 and partner_id_2 are required")
	}
	if a == b {
		return svcErr.Invalid("a user cannot match with themselves")
	}
	return nil
}

func exists(a, b string) error {
	return svcErr.Exists("match between %s and %s already exists", a, b)
}
