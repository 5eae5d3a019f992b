// Package identity derives who is logged in from the domain state and
// isolates how passwords are stored and compared.
package identity

import (
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/state"
)

// SessionUser returns the user the session points at. A null or dangling
// session yields nil.
func SessionUser(st *state.State) *models.User {
	if st == nil || st.SessionUserID == nil {
		return nil
	}
	return st.UserByID(*st.SessionUserID)
}

func IsAdmin(u *models.User) bool {
	return u != nil && u.Role == models.RoleAdmin
}
