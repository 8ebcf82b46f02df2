package absence

// AbsenceType is a lookup category for absences, e.g. vacation or sick leave.
type AbsenceType struct {
	ID          int
	Name        string
	Description *string
}
