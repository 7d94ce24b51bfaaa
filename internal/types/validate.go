package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRecords checks the struct-tag invariants on caller-supplied
// records. Records built by the extraction layer are validated there;
// this is the check for records arriving pre-extracted from a client.
func ValidateRecords(job *JobRecord, candidate *CandidateRecord) error {
	if err := validate.Struct(job); err != nil {
		return fmt.Errorf("invalid job record: %w", err)
	}
	if err := validate.Struct(candidate); err != nil {
		return fmt.Errorf("invalid candidate record: %w", err)
	}
	return nil
}
