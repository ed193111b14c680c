// file: internals/features/users/user/dto/user_dto.go
package dto

type CreateUserRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email,max=150"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=150"`
	UserRole     string `json:"user_role" validate:"required,oneof=ADMIN IMAM PENGURUSAN"`
}

type UpdateUserRequest struct {
	UserEmail    *string `json:"user_email,omitempty" validate:"omitempty,email,max=150"`
	UserPassword *string `json:"user_password,omitempty" validate:"omitempty,min=8"`
	UserFullName *string `json:"user_full_name,omitempty" validate:"omitempty,min=2,max=150"`
	UserRole     *string `json:"user_role,omitempty" validate:"omitempty,oneof=ADMIN IMAM PENGURUSAN"`
	UserIsActive *bool   `json:"user_is_active,omitempty"`
}
