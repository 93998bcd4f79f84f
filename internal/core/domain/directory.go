package domain

// LicenseInfo summarises domain license usage. Free is derived from the
// two Admin Settings counters: Free = MaxAccount - CurAccount.
type LicenseInfo struct {
	Free       int `json:"free"`
	MaxAccount int `json:"maxAccount"`
	CurAccount int `json:"curAccount"`
}

// Member roles accepted by the membership endpoints.
const (
	RoleOwner   = "OWNER"
	RoleManager = "MANAGER"
	RoleMember  = "MEMBER"
)

// User is a thin view of a directory user for presentation.
// The full vendor payload stays a generic object; only the fields the
// CLI renders are lifted here.
type User struct {
	ID           string `json:"id"`
	PrimaryEmail string `json:"primaryEmail"`
	FullName     string `json:"fullName"`
	Suspended    bool   `json:"suspended"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Group is a thin view of a directory group.
type Group struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int64  `json:"directMembersCount,string"`
}

// Member is a thin view of a group membership entry.
type Member struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Type  string `json:"type"`
}
