package services

import (
	"testing"

	"github.com/UpekaFernando/tour-blog-info-final/models"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	owner := models.User{ID: 1}
	admin := models.User{ID: 2, IsAdmin: true}
	stranger := models.User{ID: 3}
	anonymous := models.User{}

	assert.True(t, CanMutate(owner, 1), "owner may mutate own resource")
	assert.True(t, CanMutate(admin, 1), "admin may mutate any resource")
	assert.False(t, CanMutate(stranger, 1), "other users may not mutate")
	assert.False(t, CanMutate(anonymous, 1), "unauthenticated caller may not mutate")
}

func TestCanMutateAdminOwnResource(t *testing.T) {
	admin := models.User{ID: 2, IsAdmin: true}
	assert.True(t, CanMutate(admin, 2))
}
