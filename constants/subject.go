package constants

// Subject is a BNCC curricular component (componente curricular).
type Subject string

const (
	Portuguese        Subject = "Língua Portuguesa"
	Mathematics       Subject = "Matemática"
	Sciences          Subject = "Ciências"
	History           Subject = "História"
	Geography         Subject = "Geografia"
	Arts              Subject = "Arte"
	PhysicalEducation Subject = "Educação Física"
	English           Subject = "Língua Inglesa"
	ReligiousStudies  Subject = "Ensino Religioso"
	ComputerScience   Subject = "Computação"
)

var allSubjects = []Subject{
	Portuguese,
	Mathematics,
	Sciences,
	History,
	Geography,
	Arts,
	PhysicalEducation,
	English,
	ReligiousStudies,
	ComputerScience,
}

// SubjectsAsStringSlice returns the canonical curricular components, used to
// steer the structured extractor toward known subject labels.
func SubjectsAsStringSlice() []string {
	result := make([]string, len(allSubjects))
	for i, s := range allSubjects {
		result[i] = string(s)
	}
	return result
}
