package types

import (
	"net/url"
	"strings"
)

// Identity is the signed-in user, produced once by the auth gate and
// passed down explicitly. It is never mutated afterwards.
type Identity struct {
	UserID        string `json:"userId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	IsAdmin       bool   `json:"isAdmin"`
	CanUpdateData bool   `json:"canUpdateData"`
	Designation   string `json:"designation,omitempty"`
	ProfilePic    string `json:"profilePic,omitempty"`
}

func (i Identity) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// DevIdentity is used when the UI runs on a local-development host.
func DevIdentity() Identity {
	return Identity{
		UserID:        "local-dev",
		FirstName:     "Local",
		LastName:      "User",
		Email:         "local@dev.com",
		IsAdmin:       true,
		CanUpdateData: true,
		Designation:   "Developer",
	}
}

// Redirect tells the caller to send the user to the sign-in portal.
type Redirect struct {
	URL string
}

// NewSigninRedirect builds {portal}/signin?redirect=<escaped current page>.
func NewSigninRedirect(portalBase, currentPage string) Redirect {
	return Redirect{
		URL: strings.TrimRight(portalBase, "/") + "/signin?redirect=" + url.QueryEscape(currentPage),
	}
}

// AuthResult is either an identity or a redirect, never both.
type AuthResult struct {
	Identity *Identity
	Redirect *Redirect
}

func (r AuthResult) Authorized() bool {
	return r.Identity != nil
}
