package models

type UserRole string

const (
	UserRoleApplicant UserRole = "applicant"
	UserRoleStaff     UserRole = "staff"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) IsElevated() bool {
	return r == UserRoleStaff || r == UserRoleAdmin
}
