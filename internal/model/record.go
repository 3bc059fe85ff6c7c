package model

// Record is one enterprise GenAI adoption observation: a company adopting a
// tool in a given year, with the measured workforce impact.
type Record struct {
	Company            string  `json:"company"`
	Industry           string  `json:"industry"`
	Country            string  `json:"country"`
	Tool               string  `json:"tool"`
	AdoptionYear       int     `json:"adoption_year"`
	EmployeesImpacted  int     `json:"employees_impacted"`
	NewRoles           int     `json:"new_roles"`
	TrainingHours      float64 `json:"training_hours"`
	ProductivityChange float64 `json:"productivity_change"`
	Sentiment          string  `json:"sentiment"`
}

// Table is the full dataset, loaded once and never mutated afterwards.
type Table []Record

// View is an order-preserving subsequence of a Table produced by filtering.
// It is recomputed from scratch on every predicate change.
type View []Record

// Field identifies a categorical column usable as a grouping key.
type Field string

const (
	FieldCompany   Field = "company"
	FieldIndustry  Field = "industry"
	FieldCountry   Field = "country"
	FieldTool      Field = "tool"
	FieldSentiment Field = "sentiment"
)

// Metric identifies a numeric column usable for aggregation.
type Metric string

const (
	MetricAdoptionYear       Metric = "adoption_year"
	MetricEmployeesImpacted  Metric = "employees_impacted"
	MetricNewRoles           Metric = "new_roles"
	MetricTrainingHours      Metric = "training_hours"
	MetricProductivityChange Metric = "productivity_change"
)

// Key returns the record's value for a categorical field.
func (r Record) Key(f Field) string {
	switch f {
	case FieldCompany:
		return r.Company
	case FieldIndustry:
		return r.Industry
	case FieldCountry:
		return r.Country
	case FieldTool:
		return r.Tool
	case FieldSentiment:
		return r.Sentiment
	}
	return ""
}

// Value returns the record's value for a numeric metric.
func (r Record) Value(m Metric) float64 {
	switch m {
	case MetricAdoptionYear:
		return float64(r.AdoptionYear)
	case MetricEmployeesImpacted:
		return float64(r.EmployeesImpacted)
	case MetricNewRoles:
		return float64(r.NewRoles)
	case MetricTrainingHours:
		return r.TrainingHours
	case MetricProductivityChange:
		return r.ProductivityChange
	}
	return 0
}
