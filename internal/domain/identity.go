package domain

// Identity is the authenticated email+role pair derived from a
// successful login or a validated bearer token. It is never persisted
// on its own; it always originates from an administrator record.
type Identity struct {
	Email string
	Role  Role
}
