package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	"github.com/oksasatya/user-directory/internal/domain/repository"
	"github.com/oksasatya/user-directory/pkg/apperror"
)

// UserRepository keeps users in process memory, in insertion order.
// The slice, the id counter and the email index change together under mu.
type UserRepository struct {
	mu      sync.RWMutex
	users   []entity.User
	byEmail map[string]int // normalized email -> user id
	seq     int
	now     func() time.Time
}

type Option func(*UserRepository)

// WithClock overrides the source of CreatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *UserRepository) { r.now = now }
}

func NewUserRepository(opts ...Option) *UserRepository {
	r := &UserRepository{
		byEmail: make(map[string]int),
		seq:     1,
		now:     time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// List returns a copy of the users matching filter. A blank filter matches everyone.
func (r *UserRepository) List(filter string) []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		if needle == "" || u.Matches(needle) {
			out = append(out, u)
		}
	}
	return out
}

func (r *UserRepository) GetByID(id int) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, err := r.indexOf(id)
	if err != nil {
		return entity.User{}, err
	}
	return r.users[i], nil
}

func (r *UserRepository) Create(in entity.NewUser) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email, err := r.ensureEmailUnique(in.Email, 0)
	if err != nil {
		return entity.User{}, err
	}

	u := entity.User{
		ID:        r.seq,
		Name:      in.Name,
		Email:     email,
		Age:       in.Age,
		Profile:   in.Profile,
		CreatedAt: r.now().UTC(),
	}
	r.seq++
	r.users = append(r.users, u)
	r.byEmail[email] = u.ID
	return u, nil
}

func (r *UserRepository) Update(id int, patch entity.UserPatch) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexOf(id)
	if err != nil {
		return entity.User{}, err
	}
	current := r.users[i]
	if patch.HasEmail() {
		if _, err := r.ensureEmailUnique(*patch.Email, id); err != nil {
			return entity.User{}, err
		}
	}

	updated := patch.ApplyTo(current)
	if updated.Email != current.Email {
		delete(r.byEmail, current.Email)
		r.byEmail[updated.Email] = id
	}
	r.users[i] = updated
	return updated, nil
}

func (r *UserRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexOf(id)
	if err != nil {
		return err
	}
	delete(r.byEmail, r.users[i].Email)
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// indexOf must be called with mu held.
func (r *UserRepository) indexOf(id int) (int, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return i, nil
		}
	}
	return -1, apperror.UserNotFound(id)
}

// ensureEmailUnique normalizes email and fails when another user holds it.
// ignoreID excludes the record being updated; 0 excludes nothing.
// Must be called with mu held.
func (r *UserRepository) ensureEmailUnique(email string, ignoreID int) (string, error) {
	normalized := entity.NormalizeEmail(email)
	if owner, ok := r.byEmail[normalized]; ok && owner != ignoreID {
		return "", apperror.EmailAlreadyExists(normalized)
	}
	return normalized, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
