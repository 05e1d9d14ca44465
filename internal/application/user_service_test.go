package application

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	"github.com/oksasatya/user-directory/internal/infrastructure/memory"
	"github.com/oksasatya/user-directory/pkg/apperror"
)

type fakeIndexer struct {
	mu      sync.Mutex
	indexed []int
	deleted []int
	err     error
}

func (f *fakeIndexer) IndexUser(_ context.Context, u entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexed = append(f.indexed, u.ID)
	return f.err
}

func (f *fakeIndexer) DeleteUser(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []UserEvent
	err    error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ev, ok := body.(UserEvent); ok {
		f.events = append(f.events, ev)
	}
	return f.err
}

func (f *fakePublisher) types() []string {
	out := []string{}
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeRecorder struct {
	ops   map[string]int
	users int
}

func (f *fakeRecorder) RecordOperation(op string, err error) {
	if f.ops == nil {
		f.ops = map[string]int{}
	}
	key := op + ":ok"
	if err != nil {
		key = op + ":err"
	}
	f.ops[key]++
}
func (f *fakeRecorder) SetUsers(n int)                                          { f.users = n }
func (f *fakeRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService() (*Service, *fakeIndexer, *fakePublisher, *fakeRecorder) {
	idx := &fakeIndexer{}
	pub := &fakePublisher{}
	rec := &fakeRecorder{}
	svc := NewService(memory.NewUserRepository(), idx, pub, rec, quietLogger())
	return svc, idx, pub, rec
}

func carlos() entity.NewUser {
	return entity.NewUser{
		Name:    "Juan Carlos",
		Email:   "carlos@example.com",
		Age:     28,
		Profile: entity.Profile{ID: 1, Code: "ADM", DisplayName: "Administrador"},
	}
}

func TestService_Lifecycle(t *testing.T) {
	svc, idx, pub, rec := newTestService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, carlos())
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, 1, rec.users)

	name := "Juan Carlos Updated"
	_, err = svc.UpdateUser(ctx, u.ID, entity.UserPatch{Name: &name})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, u.ID))
	assert.Equal(t, 0, rec.users)

	assert.Equal(t, []int{1, 1}, idx.indexed)
	assert.Equal(t, []int{1}, idx.deleted)
	assert.Equal(t, []string{EventUserCreated, EventUserUpdated, EventUserDeleted}, pub.types())
	assert.Equal(t, "carlos@example.com", pub.events[2].Email)
	assert.Equal(t, map[string]int{"create:ok": 1, "update:ok": 1, "delete:ok": 1}, rec.ops)
}

func TestService_FailuresHaveNoSideEffects(t *testing.T) {
	svc, idx, pub, rec := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, carlos())
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, carlos())
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	_, err = svc.GetUser(ctx, 42)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	err = svc.DeleteUser(ctx, 42)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	assert.Equal(t, []int{1}, idx.indexed)
	assert.Empty(t, idx.deleted)
	assert.Equal(t, []string{EventUserCreated}, pub.types())
	assert.Equal(t, 1, rec.ops["create:err"])
	assert.Equal(t, 1, rec.ops["get:err"])
	assert.Equal(t, 1, rec.ops["delete:err"])
}

func TestService_CollaboratorErrorsAreSwallowed(t *testing.T) {
	svc, idx, pub, _ := newTestService()
	idx.err = errors.New("es down")
	pub.err = errors.New("amqp down")

	u, err := svc.CreateUser(context.Background(), carlos())
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
}

func TestService_NilCollaborators(t *testing.T) {
	svc := NewService(memory.NewUserRepository(), nil, nil, nil, nil)
	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-1")

	u, err := svc.CreateUser(ctx, carlos())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteUser(ctx, u.ID))
	assert.Empty(t, svc.ListUsers(ctx, ""))
}

func TestService_ListUsersFilters(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()
	_, _ = svc.CreateUser(ctx, carlos())
	_, _ = svc.CreateUser(ctx, entity.NewUser{
		Name: "Grace", Email: "grace@example.com", Age: 30,
		Profile: entity.Profile{ID: 2, Code: "USR", DisplayName: "Usuario"},
	})

	got := svc.ListUsers(ctx, "adm")
	require.Len(t, got, 1)
	assert.Equal(t, "Juan Carlos", got[0].Name)
	assert.Len(t, svc.ListUsers(ctx, ""), 2)
}
