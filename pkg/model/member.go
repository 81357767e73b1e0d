package model

// MemberTable maps a member name to the overlapping courses they attend.
// Records are shared by reference with the CourseTable; courses with a
// single enrollment are never referenced here.
type MemberTable map[string][]*CourseRecord
