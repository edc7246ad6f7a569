// Package session builds the immutable per-invocation session from a
// stored bearer token. Screens receive a Session explicitly instead of
// reading ambient auth state.
package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Known roles. The server owns the role vocabulary; these are the values
// it issues today.
const (
	RoleAdministrador = "Administrador"
	RoleBarbero       = "Barbero"
	RoleCliente       = "Cliente"
)

// Profile is the user display data rendered in the drawer. Fields may be
// empty; renderers fall back gracefully.
type Profile struct {
	Nombre string
	Email  string
	Avatar string
}

// Session is an immutable view of the authenticated user for the
// lifetime of one invocation.
type Session struct {
	ServerURL string
	Role      string
	Profile   Profile
	// BarberoID is set for barber accounts and pins gallery ownership
	// to their own chair.
	BarberoID string

	token  string
	logout func() error
}

// claims mirrors the token payload the server issues.
type claims struct {
	Rol       string `json:"rol"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	BarberoID string `json:"barberoId"`
	jwt.RegisteredClaims
}

// New builds a session from a stored token. The token is decoded without
// signature verification: the server is the authority and re-validates it
// on every request; the client only needs the display claims.
func New(serverURL, token string, logout func() error) (*Session, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &claims{})
	if err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}
	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, fmt.Errorf("unexpected token claims")
	}

	return &Session{
		ServerURL: serverURL,
		Role:      c.Rol,
		Profile: Profile{
			Nombre: c.Nombre,
			Email:  c.Email,
			Avatar: c.Avatar,
		},
		BarberoID: c.BarberoID,
		token:     token,
		logout:    logout,
	}, nil
}

// Token returns the bearer token for API calls.
func (s *Session) Token() string { return s.token }

// Logout discards the stored credential. No return value is expected by
// callers beyond the error.
func (s *Session) Logout() error {
	if s.logout == nil {
		return nil
	}
	return s.logout()
}

// CanManageGallery reports whether the role may open the gallery
// management surface.
func (s *Session) CanManageGallery() bool {
	return s.Role == RoleAdministrador || s.Role == RoleBarbero
}

// CanChooseBarber reports whether the role may assign gallery items to an
// arbitrary barber. Barbers are pinned to themselves.
func (s *Session) CanChooseBarber() bool {
	return s.Role == RoleAdministrador
}
