package domain

import "time"

// Role represents a role tag assigned to a member
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTreasurer Role = "treasurer"
	RoleMember    Role = "member"
)

// ParseRole validates a role tag
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleTreasurer, RoleMember:
		return Role(s), true
	}
	return "", false
}

// RoleSet is the set of roles held by a member. A member may hold zero,
// one, or multiple roles; an empty set means plain member access.
type RoleSet []Role

// Has reports whether the set contains the given role
func (rs RoleSet) Has(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

// CanViewAll reports whether the holder sees all members' records
func (rs RoleSet) CanViewAll() bool {
	return rs.Has(RoleAdmin) || rs.Has(RoleTreasurer)
}

// CanRecordContributions reports whether the holder may record payments
func (rs RoleSet) CanRecordContributions() bool {
	return rs.Has(RoleAdmin) || rs.Has(RoleTreasurer)
}

// CanEditContributions reports whether the holder may edit or delete
// existing contribution records
func (rs RoleSet) CanEditContributions() bool {
	return rs.Has(RoleAdmin)
}

// CanManageMembers reports whether the holder may edit or delete members
func (rs RoleSet) CanManageMembers() bool {
	return rs.Has(RoleAdmin)
}

// CanManageRoles reports whether the holder may reassign roles
func (rs RoleSet) CanManageRoles() bool {
	return rs.Has(RoleAdmin)
}

// CanManageContent reports whether the holder may author announcements,
// events and documents
func (rs RoleSet) CanManageContent() bool {
	return rs.Has(RoleAdmin)
}

// Strings returns the role tags as plain strings (for JWT claims)
func (rs RoleSet) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}
	return out
}

// RoleSetFromStrings builds a role set from claim tags, dropping unknown tags
func RoleSetFromStrings(tags []string) RoleSet {
	rs := make(RoleSet, 0, len(tags))
	for _, t := range tags {
		if r, ok := ParseRole(t); ok {
			rs = append(rs, r)
		}
	}
	return rs
}

// Session identifies an authenticated caller. It is populated once per
// session load (login or token refresh) and passed to every service that
// needs it; a role revoked mid-session is not observed until the next load.
type Session struct {
	UserID string
	Roles  RoleSet
}

// MemberStatus represents member lifecycle status
type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberPending   MemberStatus = "pending"
	MemberSuspended MemberStatus = "suspended"
)

// ValidMemberStatus reports whether s is a known member status
func ValidMemberStatus(s string) bool {
	switch MemberStatus(s) {
	case MemberActive, MemberPending, MemberSuspended:
		return true
	}
	return false
}

// PaymentMethod represents how a contribution was paid
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodMpesa        PaymentMethod = "mpesa"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// ValidPaymentMethod reports whether s is a known payment method
func ValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case MethodCash, MethodMpesa, MethodBankTransfer:
		return true
	}
	return false
}

// ContributionStatus represents the state of a dues payment
type ContributionStatus string

const (
	ContributionPaid    ContributionStatus = "paid"
	ContributionPending ContributionStatus = "pending"
	ContributionLate    ContributionStatus = "late"
)

// ValidContributionStatus reports whether s is a known contribution status
func ValidContributionStatus(s string) bool {
	switch ContributionStatus(s) {
	case ContributionPaid, ContributionPending, ContributionLate:
		return true
	}
	return false
}

// LedgerEntry is the calendar view of one contribution record
type LedgerEntry struct {
	ID          string
	Amount      float64
	WeekNumber  int
	Status      ContributionStatus
	Method      PaymentMethod
	PaymentDate time.Time
}
