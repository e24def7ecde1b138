package domain

// Capability predicates gating endpoint access. Each is a pure function of
// the account's stored flags and is evaluated fresh on every request; the
// HTTP layer turns a false result into a 403.

// CanProvidePIN gates the PIN provisioning endpoint: any active non-manager
// account, whether or not a PIN already exists (set-or-change semantics).
func CanProvidePIN(a Account) bool {
	return a.Role != RoleManager && a.IsActive
}

// CanUseProfile gates the client profile endpoint: an active non-manager
// account that has a credential set.
func CanUseProfile(a Account) bool {
	return CanProvidePIN(a) && a.HasPIN()
}

// CanManageClients gates the manager administration endpoints.
func CanManageClients(a Account) bool {
	return a.IsActive && (a.Role == RoleManager || a.Role == RoleSuperuser)
}
