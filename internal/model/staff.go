package model

type StaffRole string

const (
	StaffRoleHospitalAdmin StaffRole = "hospital_admin"
	StaffRoleCoordinator   StaffRole = "coordinator"
	StaffRoleFacilitator   StaffRole = "facilitator"
	StaffRoleAnalyst       StaffRole = "analyst"
)

// Staff is a dashboard user for hospitals and facilitator orgs.
type Staff struct {
	Base
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         StaffRole `json:"role"`
	OrgID        string    `json:"org_id,omitempty"`
	PasswordHash string    `json:"password_hash"`
}

func (*Staff) Collection() string { return "staff" }

type CreateStaffRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Role         string `json:"role" binding:"omitempty,oneof=hospital_admin coordinator facilitator analyst"`
	OrgID        string `json:"org_id"`
	PasswordHash string `json:"password_hash" binding:"required"`
}

func (r *CreateStaffRequest) Staff() *Staff {
	s := &Staff{
		Name:         r.Name,
		Email:        r.Email,
		Role:         StaffRole(r.Role),
		OrgID:        r.OrgID,
		PasswordHash: r.PasswordHash,
	}
	if s.Role == "" {
		s.Role = StaffRoleCoordinator
	}
	return s
}
