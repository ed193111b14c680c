// file: internals/features/users/master/dto/master_admin_dto.go
package dto

type CreateMasterAdminRequest struct {
	MasterAdminEmail    string `json:"master_admin_email" validate:"required,email,max=150"`
	MasterAdminPassword string `json:"master_admin_password" validate:"required,min=8"`
	MasterAdminFullName string `json:"master_admin_full_name" validate:"required,min=2,max=150"`
	MasterAdminRole     string `json:"master_admin_role" validate:"required,oneof=SUPER_ADMIN SUPPORT"`
}

type UpdateMasterAdminRequest struct {
	MasterAdminEmail    *string `json:"master_admin_email,omitempty" validate:"omitempty,email,max=150"`
	MasterAdminPassword *string `json:"master_admin_password,omitempty" validate:"omitempty,min=8"`
	MasterAdminFullName *string `json:"master_admin_full_name,omitempty" validate:"omitempty,min=2,max=150"`
	MasterAdminRole     *string `json:"master_admin_role,omitempty" validate:"omitempty,oneof=SUPER_ADMIN SUPPORT"`
	MasterAdminIsActive *bool   `json:"master_admin_is_active,omitempty"`
}
