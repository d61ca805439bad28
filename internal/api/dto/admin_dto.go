package dto

import "github.com/spec-kit/vehicle-registry/internal/domain"

// The wire field names (senha, perfil) are part of the public API and
// must not change. JSON decoding is case-insensitive, so clients
// sending "Email" or "Senha" are accepted as well.

// LoginRequest is the payload for POST /admins/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoggedAdminResponse is returned on successful login.
type LoggedAdminResponse struct {
	Email   string `json:"email"`
	Profile string `json:"perfil"`
	Token   string `json:"token"`
}

// AdminCreateRequest is the payload for POST /admins.
type AdminCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
	Profile  string `json:"perfil"`
}

// Validate collects the human-readable messages for every failed rule.
func (r AdminCreateRequest) Validate() []string {
	messages := []string{}
	if r.Email == "" {
		messages = append(messages, "Email não pode ser vazio.")
	}
	if r.Password == "" {
		messages = append(messages, "Senha não pode ser vazia.")
	}
	if r.Profile == "" {
		messages = append(messages, "Perfil não pode ser vazio.")
	} else if !domain.Role(r.Profile).Valid() {
		messages = append(messages, "Perfil inválido.")
	}
	return messages
}

// AdminView is the public projection of an administrator. The
// password never appears in responses.
type AdminView struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Profile string `json:"perfil"`
}

// NewAdminView projects a domain record.
func NewAdminView(admin domain.Administrator) AdminView {
	return AdminView{ID: admin.ID, Email: admin.Email, Profile: admin.Role.String()}
}

// NewAdminViews projects a list.
func NewAdminViews(admins []domain.Administrator) []AdminView {
	views := make([]AdminView, 0, len(admins))
	for _, admin := range admins {
		views = append(views, NewAdminView(admin))
	}
	return views
}
