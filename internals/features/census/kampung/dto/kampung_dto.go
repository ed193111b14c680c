// file: internals/features/census/kampung/dto/kampung_dto.go
package dto

type KampungRequest struct {
	KampungName     string `json:"kampung_name" validate:"required,min=2,max=150"`
	KampungIsActive *bool  `json:"kampung_is_active,omitempty"`
}
