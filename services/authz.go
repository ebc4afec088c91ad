package services

import (
	"github.com/UpekaFernando/tour-blog-info-final/models"
)

// CanMutate reports whether caller may mutate or delete a resource owned
// by ownerID. Only the owner or an admin may.
func CanMutate(caller models.User, ownerID uint) bool {
	return caller.ID == ownerID || caller.IsAdmin
}
