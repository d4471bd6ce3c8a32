package domain

import "fmt"

// The access policy is a pure role-vs-customer-type and role-vs-own-account
// rule set. It is consulted after the route guards have already allowed the
// operation; callers must check record existence before any function here so
// that a missing id reports not-found rather than a policy failure.

// ImplicitCustomerType returns the customer type a role is restricted to.
// ok is false for admin, which sees all types.
func ImplicitCustomerType(role Role) (t CustomerType, ok bool) {
	switch role {
	case RoleSalePersonal:
		return CustomerPersonal, true
	case RoleSaleCompany:
		return CustomerCompany, true
	}
	return "", false
}

// CheckListFilter validates an explicit list filter against the caller's
// role. A filter that conflicts with the role's implicit type fails with
// ErrInvalidRequest rather than silently returning an empty list.
func CheckListFilter(role Role, requested CustomerType) error {
	implicit, ok := ImplicitCustomerType(role)
	if !ok || requested == "" {
		return nil
	}
	if requested != implicit {
		return fmt.Errorf("%w: customer type %s conflicts with role %s", ErrInvalidRequest, requested, role)
	}
	return nil
}

// CheckCustomerAccess decides whether a role may see a single customer
// record of the given type. Admin bypasses the check.
func CheckCustomerAccess(role Role, t CustomerType) error {
	implicit, ok := ImplicitCustomerType(role)
	if ok && t != implicit {
		return fmt.Errorf("%w: customer type %s conflicts with role %s", ErrInvalidRequest, t, role)
	}
	return nil
}

// CheckUserRead decides whether the caller may read the target user's full
// record: admin, or the caller's own account.
func CheckUserRead(caller Principal, targetID uint) error {
	if caller.Role == RoleAdmin || caller.UserID == targetID {
		return nil
	}
	return fmt.Errorf("%w: cannot read another account", ErrUnauthorized)
}

// CheckUserMutation decides whether the caller may update or delete the
// target user. Only the account itself may, regardless of role — admin
// included.
func CheckUserMutation(caller Principal, targetID uint) error {
	if caller.UserID == targetID {
		return nil
	}
	return fmt.Errorf("%w: cannot modify another account", ErrUnauthorized)
}
