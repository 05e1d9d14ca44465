package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	repo "github.com/oksasatya/user-directory/internal/domain/repository"
	"github.com/oksasatya/user-directory/internal/metrics"
)

// UserIndexer mirrors users into a search index. Failures never fail a request.
type UserIndexer interface {
	IndexUser(ctx context.Context, u entity.User) error
	DeleteUser(ctx context.Context, id int) error
}

// EventPublisher delivers domain events to a broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type Service struct {
	Repo    repo.UserRepository
	Indexer UserIndexer
	Events  EventPublisher
	Metrics metrics.Recorder
	Logger  *logrus.Logger
}

func NewService(repo repo.UserRepository, indexer UserIndexer, events EventPublisher, rec metrics.Recorder, logger *logrus.Logger) *Service {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{
		Repo:    repo,
		Indexer: indexer,
		Events:  events,
		Metrics: rec,
		Logger:  logger,
	}
}

// ListUsers returns users whose name, email, profile code or display name
// contain q, case-insensitively. A blank q returns everyone.
func (s *Service) ListUsers(ctx context.Context, q string) []entity.User {
	users := s.Repo.List(q)
	s.Metrics.RecordOperation("list", nil)
	return users
}

func (s *Service) GetUser(ctx context.Context, id int) (entity.User, error) {
	u, err := s.Repo.GetByID(id)
	s.Metrics.RecordOperation("get", err)
	return u, err
}

func (s *Service) CreateUser(ctx context.Context, in entity.NewUser) (entity.User, error) {
	u, err := s.Repo.Create(in)
	s.Metrics.RecordOperation("create", err)
	if err != nil {
		return entity.User{}, err
	}
	s.Metrics.SetUsers(s.Repo.Count())
	s.log(ctx).WithField("user_id", u.ID).Info("user created")

	s.indexUser(ctx, u)
	s.publish(ctx, EventUserCreated, u)
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int, patch entity.UserPatch) (entity.User, error) {
	u, err := s.Repo.Update(id, patch)
	s.Metrics.RecordOperation("update", err)
	if err != nil {
		return entity.User{}, err
	}
	s.log(ctx).WithField("user_id", u.ID).Info("user updated")

	s.indexUser(ctx, u)
	s.publish(ctx, EventUserUpdated, u)
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	// fetched only for the event payload
	u, _ := s.Repo.GetByID(id)
	err := s.Repo.Delete(id)
	s.Metrics.RecordOperation("delete", err)
	if err != nil {
		return err
	}
	s.Metrics.SetUsers(s.Repo.Count())
	s.log(ctx).WithField("user_id", id).Info("user deleted")

	if s.Indexer != nil {
		c, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := s.Indexer.DeleteUser(c, id); err != nil {
			s.log(ctx).WithError(err).WithField("user_id", id).Warn("search delete failed")
		}
	}
	s.publish(ctx, EventUserDeleted, u)
	return nil
}

func (s *Service) indexUser(ctx context.Context, u entity.User) {
	if s.Indexer == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Indexer.IndexUser(c, u); err != nil {
		s.log(ctx).WithError(err).WithField("user_id", u.ID).Warn("search index failed")
	}
}

func (s *Service) publish(ctx context.Context, typ string, u entity.User) {
	if s.Events == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Events.PublishJSON(c, NewUserEvent(typ, u)); err != nil {
		s.log(ctx).WithError(err).WithField("event", typ).Warn("publish event failed")
	}
}

// log returns an entry carrying the request id when the context has one.
func (s *Service) log(ctx context.Context) *logrus.Entry {
	logger := s.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	entry := logrus.NewEntry(logger).WithContext(ctx)
	if rid, ok := ctx.Value(RequestIDKey{}).(string); ok && rid != "" {
		entry = entry.WithField("request_id", rid)
	}
	return entry
}

// RequestIDKey is the context key under which the HTTP layer stores the request id.
type RequestIDKey struct{}
