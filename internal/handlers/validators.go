package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// RegisterCustomValidators installs binding validators used by the DTOs.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// txnkind restricts a string field to the closed transaction kind enum.
		_ = v.RegisterValidation("txnkind", func(fl validator.FieldLevel) bool {
			return domain.TransactionKind(fl.Field().String()).Valid()
		})
	}
}
