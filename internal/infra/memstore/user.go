package memstore

import (
	"context"

	"studyspot/internal/domain/user"
	"studyspot/internal/infra"
)

// CreateUser assigns the next user id and createdAt, stores the record and
// returns the stored copy. Uniqueness of username/email is the caller's
// responsibility; the store trusts its input shape.
func (s *Store) CreateUser(_ context.Context, in user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.nextUserID
	s.nextUserID++
	in.CreatedAt = s.clock.Now()

	s.users[in.ID] = in
	s.userIDs = append(s.userIDs, in.ID)
	return &in, nil
}

func (s *Store) GetUserByID(_ context.Context, id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userIDs {
		if u := s.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userIDs {
		if u := s.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
}
