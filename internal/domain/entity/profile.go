package entity

import "time"

// Identity mirrors the authenticated principal emitted by the identity
// provider. It is owned by the provider; the session store only reacts to
// identity changes, it never creates or mutates identities itself.
type Identity struct {
	UID         string // Opaque identifier assigned by the identity provider.
	Email       string
	DisplayName string
}

// Profile is the role-tagged record stored under users/{uid}. It is written
// once at registration and read-mirrored into the session store after every
// identity change. A profile's role is only ever changed by a superadmin,
// never by its own holder.
type Profile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
