package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	want := User{ID: 0, Name: "Guest", Email: "guest@example.com"}

	assert.Equal(t, want, Default())
	assert.Equal(t, Default(), Default())
}
