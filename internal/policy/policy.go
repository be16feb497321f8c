// Package policy decides whether the identity established for a request may
// invoke an operation. Evaluation is pure: the same identity and requirement
// always produce the same decision, and nothing here touches storage.
package policy

import (
	"errors"

	"bookstore/internal/domain"
)

var (
	// ErrUnauthenticated denies an anonymous request to a protected operation. Maps to 401.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden denies an authenticated request lacking a required role. Maps to 403.
	ErrForbidden = errors.New("insufficient role")
)

// Identity is the per-request authentication context. It is built once by the
// request authorizer from a verified token, carried on the request context,
// and never shared across requests. Roles are the verbatim set embedded in
// the token at issuance; they are not re-read from storage.
type Identity struct {
	Subject       string
	Roles         []domain.Role
	Authenticated bool
}

// Anonymous returns the identity of a request with no valid token.
func Anonymous() Identity {
	return Identity{}
}

// Requirement is the declared access rule for one operation.
type Requirement struct {
	authenticated bool
	roles         []domain.Role
}

// Public allows any request, authenticated or not.
func Public() Requirement {
	return Requirement{}
}

// Authenticated allows any authenticated identity regardless of roles.
func Authenticated() Requirement {
	return Requirement{authenticated: true}
}

// AnyRole allows an authenticated identity holding at least one of roles.
func AnyRole(roles ...domain.Role) Requirement {
	return Requirement{authenticated: true, roles: roles}
}

// Evaluate returns nil when id satisfies req, ErrUnauthenticated when req
// needs an identity and none is present, and ErrForbidden when the identity
// holds none of the required roles.
func Evaluate(id Identity, req Requirement) error {
	if !req.authenticated {
		return nil
	}
	if !id.Authenticated {
		return ErrUnauthenticated
	}
	for _, r := range req.roles {
		if domain.ContainsRole(id.Roles, r) {
			return nil
		}
	}
	if len(req.roles) > 0 {
		return ErrForbidden
	}
	return nil
}
