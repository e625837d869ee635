package memory

import (
	"context"
	"strings"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/user"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.store.do(ctx, func(st *state) error {
		for _, candidate := range st.users {
			if strings.EqualFold(candidate.Email, email) {
				u = candidate
				return nil
			}
		}
		return user.ErrUserNotFound
	})
	return u, err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var u user.User
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.users[id]
		if !ok {
			return user.ErrUserNotFound
		}
		u = found
		return nil
	})
	return u, err
}

// AddUser inserts a user directly. It is used to seed the memory store,
// which has no user management endpoints.
func (s *Store) AddUser(u user.User) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if u.ID == "" {
		u.ID = s.newID()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.CreatedAt = now
	u.UpdatedAt = now
	s.data.users[u.ID] = u
	return u
}
