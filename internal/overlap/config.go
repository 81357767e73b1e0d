package overlap

// Configuration holds the program parameters.
type Configuration struct {
	NameColumn       string // header label of the member name column
	DefaultSection   string // section assigned when a label has no marker
	ReportFile       string // course-grouped overlap report
	MemberReportFile string // member-grouped overlap report
	EnrollmentFile   string // normalized enrollment csv export
}
