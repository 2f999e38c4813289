package database

import (
	"fmt"

	"github.com/go-playground/validator"
)

var recordValidator = validator.New()

// ValidateRecord checks a record's struct tags before it is handed to
// the data-access layer. The Add* operations themselves perform no
// field validation; callers run this first.
func ValidateRecord(record interface{}) error {
	if err := recordValidator.Struct(record); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	return nil
}
