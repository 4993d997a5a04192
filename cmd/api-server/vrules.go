package main

import (
	"github.com/kingchappers/arc-check-in/internal/validator"
)

// Validation rules

const _maxHistoryLimit = 500

func validateHistoryLimit(v *validator.Validator, limit int) {
	v.CheckField(validator.Between(limit, 0, _maxHistoryLimit), "limit", "must be between 0 and 500")
}

func validateRangeBounds(v *validator.Validator, hasStart bool, startErr error, hasEnd bool, endErr error) {
	v.CheckField(hasStart, "start", "must be provided")
	v.CheckField(hasEnd, "end", "must be provided")
	if hasStart {
		v.CheckField(startErr == nil, "start", "is not a valid time")
	}
	if hasEnd {
		v.CheckField(endErr == nil, "end", "is not a valid time")
	}
}
