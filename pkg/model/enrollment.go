package model

// Enrollment is one (member, course, section) tuple parsed from the survey
// csv. Section holds digits only; "001" when the raw label carried no
// parenthesized section marker.
type Enrollment struct {
	Name    string `csv:"name"`
	Course  string `csv:"course"`
	Section string `csv:"section"`
}
