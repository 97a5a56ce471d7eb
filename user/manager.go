package user

import (
	"github.com/go-kyugo/usersvc/logger"
)

// Manager wraps a Service and seeds it with default data.
type Manager struct {
	service *Service
}

func NewManager() *Manager {
	return &Manager{
		service: NewService(),
	}
}

// Seed adds the default guest user and the built-in admin user, in that
// order. Seeding is not idempotent: calling it again appends the pair again.
func (m *Manager) Seed() {
	logger.Info("seeding default users", nil)

	m.service.Add(Default())
	m.service.Add(User{
		ID:    1,
		Name:  "Admin",
		Email: "admin@example.com",
	})
}

// Get retrieves a user by id.
func (m *Manager) Get(id int) (User, bool) {
	return m.service.FindByID(id)
}

// ListAll returns all stored users.
func (m *Manager) ListAll() []User {
	return m.service.All()
}
