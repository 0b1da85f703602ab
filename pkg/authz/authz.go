// Package authz holds the single ownership check used by every mutating
// operation on user-owned resources. Handlers resolve the actor from the
// token, services resolve the resource owner from the store, and this is
// the only place the two ids are compared.
package authz

import (
	"VidTube.com/pkg/errno"
)

// Authorize allows the operation only when the acting user owns the
// resource. A denied check never reveals who the real owner is.
func Authorize(actorId, ownerId int64) error {
	if actorId <= 0 {
		return errno.AuthorizationFailedErr
	}
	if actorId != ownerId {
		return errno.ForbiddenErr
	}
	return nil
}
