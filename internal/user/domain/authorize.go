package domain

import (
	"github.com/google/uuid"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	"github.com/xapps/user-management-service/internal/errors"
)

// Authorization rules for user lifecycle operations.
//
// Every rule takes the acting principal as an explicit argument (nil means
// anonymous) and returns nil on allow, or a denial error: ErrUnauthorized when
// no identity was presented where one is required, ErrForbidden when the
// presented identity lacks the role or ownership the operation demands.

// CanListUsers allows listing all users only for authenticated administrators.
func CanListUsers(principal *authDomain.Principal) error {
	if principal.IsAnonymous() {
		return errors.ErrUnauthorized
	}
	if !principal.HasRole(RoleAdministrator) {
		return errors.ErrForbidden
	}
	return nil
}

// CanViewUser allows access to a single record for administrators and for the
// record's own user (principal.ID == targetID).
func CanViewUser(principal *authDomain.Principal, targetID uuid.UUID) error {
	if principal.IsAnonymous() {
		return errors.ErrUnauthorized
	}
	if principal.HasRole(RoleAdministrator) || principal.ID == targetID {
		return nil
	}
	return errors.ErrForbidden
}

// CanDeleteUser follows the same admin-or-owner rule as CanViewUser.
func CanDeleteUser(principal *authDomain.Principal, targetID uuid.UUID) error {
	return CanViewUser(principal, targetID)
}

// CanCreateUser allows anonymous signup. The only restriction is escalation:
// a payload requesting the Administrator role is allowed only when the acting
// principal itself already holds Administrator.
func CanCreateUser(principal *authDomain.Principal, requestedRoles []string) error {
	return checkRoleEscalation(principal, requestedRoles)
}

// CanEditUser requires two independent conditions: the admin-or-owner rule on
// the target record, and the escalation rule on the requested roles. Both must
// pass; an owner editing their own record still cannot self-assign Administrator.
func CanEditUser(principal *authDomain.Principal, targetID uuid.UUID, requestedRoles []string) error {
	if err := CanViewUser(principal, targetID); err != nil {
		return err
	}
	return checkRoleEscalation(principal, requestedRoles)
}

// checkRoleEscalation denies any request that includes the Administrator role
// unless the acting principal already holds it.
func checkRoleEscalation(principal *authDomain.Principal, requestedRoles []string) error {
	if !ContainsAdministrator(requestedRoles) {
		return nil
	}
	if principal.HasRole(RoleAdministrator) {
		return nil
	}
	if principal.IsAnonymous() {
		return errors.ErrUnauthorized
	}
	return errors.ErrForbidden
}
