package policy

import (
	"testing"

	"github.com/google/uuid"
)

type resource struct {
	owner   *uuid.UUID
	private bool
}

func (r resource) ResourceOwnerID() *uuid.UUID { return r.owner }
func (r resource) ResourcePrivate() bool       { return r.private }

func TestCanView(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	admin := uuid.New()

	cases := []struct {
		name string
		res  resource
		v    Viewer
		want bool
	}{
		{"anonymous public visible to anonymous", resource{nil, false}, Anonymous(), true},
		{"anonymous public visible to user", resource{nil, false}, Authenticated(other, false), true},
		{"owned public hidden from anonymous", resource{&owner, false}, Anonymous(), false},
		{"owned public hidden from other user", resource{&owner, false}, Authenticated(other, false), false},
		{"owner sees own private", resource{&owner, true}, Authenticated(owner, false), true},
		{"owner sees own public", resource{&owner, false}, Authenticated(owner, false), true},
		{"other user cannot see private", resource{&owner, true}, Authenticated(other, false), false},
		{"anonymous cannot see private", resource{&owner, true}, Anonymous(), false},
		{"admin sees everything", resource{&owner, true}, Authenticated(admin, true), true},
		{"admin sees owned public", resource{&owner, false}, Authenticated(admin, true), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanView(tc.res, tc.v); got != tc.want {
				t.Fatalf("CanView = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanViewAnonymousIffUnownedPublic(t *testing.T) {
	owner := uuid.New()
	for _, res := range []resource{
		{nil, false}, {nil, true}, {&owner, false}, {&owner, true},
	} {
		want := res.owner == nil && !res.private
		if got := CanView(res, Anonymous()); got != want {
			t.Fatalf("CanView(owner=%v private=%v, anonymous) = %v, want %v",
				res.owner, res.private, got, want)
		}
	}
}

func TestCanModify(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	cases := []struct {
		name string
		res  resource
		v    Viewer
		want bool
	}{
		{"anonymous can never modify", resource{nil, false}, Anonymous(), false},
		{"anonymous cannot modify owned", resource{&owner, false}, Anonymous(), false},
		{"owner can modify", resource{&owner, true}, Authenticated(owner, false), true},
		{"other user cannot modify", resource{&owner, false}, Authenticated(other, false), false},
		{"nobody owns it, user cannot modify", resource{nil, false}, Authenticated(other, false), false},
		{"admin can modify anything", resource{nil, false}, Authenticated(other, true), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanModify(tc.res, tc.v); got != tc.want {
				t.Fatalf("CanModify = %v, want %v", got, tc.want)
			}
			// delete follows the same rule at the policy level
			if got := CanDelete(tc.res, tc.v); got != tc.want {
				t.Fatalf("CanDelete = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidOwnership(t *testing.T) {
	owner := uuid.New()
	if ValidOwnership(nil, true) {
		t.Fatal("ownerless private resource should be invalid")
	}
	if !ValidOwnership(nil, false) {
		t.Fatal("ownerless public resource should be valid")
	}
	if !ValidOwnership(&owner, true) {
		t.Fatal("owned private resource should be valid")
	}
}

func TestViewerAccessors(t *testing.T) {
	if Anonymous().IsAuthenticated() {
		t.Fatal("anonymous viewer reports authenticated")
	}
	if _, ok := Anonymous().UserID(); ok {
		t.Fatal("anonymous viewer has a user ID")
	}
	id := uuid.New()
	v := Authenticated(id, false)
	got, ok := v.UserID()
	if !ok || got != id {
		t.Fatalf("UserID = %v %v, want %v true", got, ok, id)
	}
	if v.IsAdmin() {
		t.Fatal("non-admin viewer reports admin")
	}
}
