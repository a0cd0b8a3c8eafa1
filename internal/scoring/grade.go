package scoring

// Grade is the letter bucket derived from an audit percentage.
type Grade string

// Supported grades.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFor maps a percentage onto left-closed grade intervals.
func GradeFor(percentage int) Grade {
	switch {
	case percentage >= 90:
		return GradeA
	case percentage >= 80:
		return GradeB
	case percentage >= 70:
		return GradeC
	case percentage >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// Failing reports whether the grade fails the audit.
func (grade Grade) Failing() bool {
	return grade == GradeF
}
