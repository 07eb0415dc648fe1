package validator

import "github.com/go-playground/validator/v10"

// ErrorResponse descreve uma falha de validação de struct.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// ValidateStruct valida as tags `validate` de um struct e devolve a lista de
// falhas (vazia quando o struct é válido).
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: fe.StructNamespace(),
				Tag:         fe.Tag(),
				Value:       fe.Param(),
			})
		}
	}
	return errs
}
