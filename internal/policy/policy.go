// Package policy holds the visibility rules deciding which viewers may
// read, modify or delete a resource. It is pure decision logic: no store
// access, no gin context.
package policy

import "github.com/google/uuid"

// Viewer is the identity a request acts as. The zero value is anonymous.
type Viewer struct {
	authenticated bool
	userID        uuid.UUID
	isAdmin       bool
}

// Anonymous returns the viewer for an unauthenticated request.
func Anonymous() Viewer {
	return Viewer{}
}

// Authenticated returns the viewer for a logged-in user.
func Authenticated(userID uuid.UUID, isAdmin bool) Viewer {
	return Viewer{authenticated: true, userID: userID, isAdmin: isAdmin}
}

func (v Viewer) IsAuthenticated() bool { return v.authenticated }
func (v Viewer) IsAdmin() bool         { return v.authenticated && v.isAdmin }

// UserID returns the viewer's user ID and whether one exists.
func (v Viewer) UserID() (uuid.UUID, bool) {
	if !v.authenticated {
		return uuid.Nil, false
	}
	return v.userID, true
}

// Ownable is the slice of a resource the policy needs: who owns it (nil
// for anonymous-origin resources) and whether it is private.
type Ownable interface {
	ResourceOwnerID() *uuid.UUID
	ResourcePrivate() bool
}

// CanView reports whether the viewer may read the resource.
// Anonymous-origin public resources are visible to everyone; otherwise
// only the owner and admins may read.
func CanView(r Ownable, v Viewer) bool {
	owner := r.ResourceOwnerID()
	if owner == nil && !r.ResourcePrivate() {
		return true
	}
	if v.IsAdmin() {
		return true
	}
	if id, ok := v.UserID(); ok && owner != nil && *owner == id {
		return true
	}
	return false
}

// CanModify reports whether the viewer may edit the resource. Anonymous
// viewers can never modify, not even anonymous-origin resources.
func CanModify(r Ownable, v Viewer) bool {
	if v.IsAdmin() {
		return true
	}
	id, ok := v.UserID()
	if !ok {
		return false
	}
	owner := r.ResourceOwnerID()
	return owner != nil && *owner == id
}

// CanDelete reports whether the viewer may delete the resource. File
// deletion additionally requires an explicit confirmation flag; that is
// the caller's contract, not checked here.
func CanDelete(r Ownable, v Viewer) bool {
	return CanModify(r, v)
}

// ValidOwnership reports whether the (owner, private) pair is legal.
// A resource with no owner cannot be private: there would be nobody
// allowed to ever read it.
func ValidOwnership(ownerID *uuid.UUID, private bool) bool {
	return !(ownerID == nil && private)
}
