package devserver

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lead-console/internal/domains/upload/model"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{8,14}$`)

// validateLead applies the stub's row-level rules: the same checks the real
// backend runs before creating a lead record.
func validateLead(row model.LeadRow) error {
	return validation.ValidateStruct(&row,
		validation.Field(&row.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&row.Phone,
			validation.Required.Error("phone is required"),
			validation.Match(phonePattern).Error("phone must be 10-15 digits"),
		),
	)
}
