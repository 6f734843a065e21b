package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"skillswap/internal/models"
)

// swapStatuses holds every accepted swap request status value.
var swapStatuses = map[models.SwapStatus]struct{}{
	models.SwapStatusPending:   {},
	models.SwapStatusAccepted:  {},
	models.SwapStatusRejected:  {},
	models.SwapStatusCompleted: {},
	models.SwapStatusCancelled: {},
}

// validateSwapStatus validates that a string is a known swap status
func validateSwapStatus(fl validator.FieldLevel) bool {
	_, ok := swapStatuses[models.SwapStatus(fl.Field().String())]
	return ok
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("swapstatus", validateSwapStatus)
	}
}
