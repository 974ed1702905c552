package entity

import "time"

type UserRole string

const (
	RoleSuperAdmin        UserRole = "super_admin"
	RoleDistrictAdmin     UserRole = "district_admin"
	RoleMunicipalityAdmin UserRole = "municipality_admin"
	RoleDepartmentHead    UserRole = "department_head"
	RoleFieldHead         UserRole = "field_head"
	RoleFieldStaff        UserRole = "field_staff"
	RoleWorker            UserRole = "worker"
	RoleCitizen           UserRole = "citizen"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleDistrictAdmin, RoleMunicipalityAdmin,
		RoleDepartmentHead, RoleFieldHead, RoleFieldStaff, RoleWorker, RoleCitizen:
		return true
	}
	return false
}

// Tier orders the administrative hierarchy. Citizens and workers sit at 0:
// they can be reported on behalf of or assigned to, never assign others.
func (r UserRole) Tier() int {
	switch r {
	case RoleSuperAdmin:
		return 5
	case RoleDistrictAdmin:
		return 4
	case RoleMunicipalityAdmin:
		return 3
	case RoleDepartmentHead, RoleFieldHead:
		return 2
	case RoleFieldStaff:
		return 1
	}
	return 0
}

func (r UserRole) IsAdminTier() bool {
	return r.Tier() > 0
}

// Scope is the organizational subtree a role is authorized to act within.
// A nil field is a wildcard at that level.
type Scope struct {
	District     *string `json:"district,omitempty"`
	Municipality *string `json:"municipality,omitempty"`
	Ward         *string `json:"ward,omitempty"`
	Department   *string `json:"department,omitempty"`
}

// Contains reports whether other falls within (or equals) s. Every level s
// pins down must match in other; levels s leaves open impose nothing.
func (s Scope) Contains(other Scope) bool {
	match := func(want, got *string) bool {
		if want == nil {
			return true
		}
		return got != nil && *got == *want
	}
	return match(s.District, other.District) &&
		match(s.Municipality, other.Municipality) &&
		match(s.Ward, other.Ward) &&
		match(s.Department, other.Department)
}

type UserEntity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	Points       int       `json:"points"`
	District     *string   `json:"district,omitempty"`
	Municipality *string   `json:"municipality,omitempty"`
	Ward         *string   `json:"ward,omitempty"`
	Department   *string   `json:"department,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *UserEntity) Scope() Scope {
	s := Scope{
		District:     u.District,
		Municipality: u.Municipality,
		Ward:         u.Ward,
	}
	// Department bounds only the department-head branch; for everyone else it
	// is descriptive, not a routing constraint.
	if u.Role == RoleDepartmentHead {
		s.Department = u.Department
	}
	return s
}

// WorkerEntity is one row of the registered worker roster. Report assignee
// codes must resolve here before an assignment is accepted.
type WorkerEntity struct {
	EmployeeCode string    `json:"employee_code"`
	UserID       *string   `json:"user_id,omitempty"`
	Name         string    `json:"name"`
	Department   string    `json:"department"`
	District     *string   `json:"district,omitempty"`
	Municipality *string   `json:"municipality,omitempty"`
	Ward         *string   `json:"ward,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Scope carries the full geography so containment holds against admins that
// pin any level, district included.
func (w *WorkerEntity) Scope() Scope {
	return Scope{
		District:     w.District,
		Municipality: w.Municipality,
		Ward:         w.Ward,
		Department:   &w.Department,
	}
}
