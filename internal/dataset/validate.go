package dataset

import (
	"fmt"

	"github.com/mkravets/adoptlens/internal/model"
)

// validateRecord enforces the Record invariant: every field populated, counts
// and hours non-negative. Violations are load-time errors, never a runtime
// condition the core has to handle.
func validateRecord(rec model.Record) error {
	switch {
	case rec.Company == "":
		return fmt.Errorf("empty company name")
	case rec.Industry == "":
		return fmt.Errorf("empty industry")
	case rec.Country == "":
		return fmt.Errorf("empty country")
	case rec.Tool == "":
		return fmt.Errorf("empty genai tool")
	case rec.Sentiment == "":
		return fmt.Errorf("empty employee sentiment")
	case rec.EmployeesImpacted < 0:
		return fmt.Errorf("negative employees impacted")
	case rec.NewRoles < 0:
		return fmt.Errorf("negative new roles created")
	case rec.TrainingHours < 0:
		return fmt.Errorf("negative training hours")
	}
	return nil
}
