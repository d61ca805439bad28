package domain

// Administrator is the credential record backing login and the
// /admins resource. Passwords are stored and compared as plaintext;
// see DESIGN.md before deploying this.
type Administrator struct {
	ID       int
	Email    string
	Password string
	Role     Role
}

// Identity derives the authenticated identity for this record.
func (a *Administrator) Identity() Identity {
	return Identity{Email: a.Email, Role: a.Role}
}
