package user

import (
	"github.com/go-kyugo/usersvc/logger"
)

// Service holds users in memory, in insertion order. It is not safe for
// concurrent use; callers needing that must synchronize around it.
type Service struct {
	users []User
}

func NewService() *Service {
	return &Service{
		users: make([]User, 0),
	}
}

// Add appends a user to the store. Duplicate ids are allowed.
func (s *Service) Add(u User) {
	s.users = append(s.users, u)
	logger.Debug("user added", logger.Fields{"id": u.ID, "name": u.Name})
}

// FindByID returns the first stored user with the given id. The second
// return value is false when no user matches.
func (s *Service) FindByID(id int) (User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// All returns a copy of the stored users in insertion order. Mutating the
// returned slice does not affect the store.
func (s *Service) All() []User {
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Count returns the number of stored users.
func (s *Service) Count() int {
	return len(s.users)
}
