package role

// Role tags carried in user records and bearer tokens. Route authorization
// compares the authenticated principal's role against a per-route set.
const (
	Administrator   = "ADMINISTRATOR"
	ChiefDentist    = "CHIEF_DENTIST"
	ClinicAssistant = "CLINIC_ASSISTANT"
	PrintingOnly    = "PRINTING_ONLY"
)

var (
	// AnyRole grants read access across the clinical resources.
	AnyRole = []string{Administrator, ChiefDentist, ClinicAssistant, PrintingOnly}
	// ClinicalWrite covers create/update on day-to-day records.
	ClinicalWrite = []string{Administrator, ChiefDentist, ClinicAssistant}
	// Management covers deletes and the sensitive resources.
	Management = []string{Administrator, ChiefDentist}
	// AdminOnly guards user administration.
	AdminOnly = []string{Administrator}
)

func All() []string {
	return AnyRole
}

func Valid(r string) bool {
	for _, known := range AnyRole {
		if r == known {
			return true
		}
	}
	return false
}
