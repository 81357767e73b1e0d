package overlap

import (
	"github.com/vess/classmate-finder/pkg/model"
)

// BuildCourseTable folds the enrollments into per-course records. Two
// enrollments land in the same record iff their labels filter to the same
// Hangul key; the first enrollment of a key defines the record's name.
func BuildCourseTable(enrollments []*model.Enrollment) model.CourseTable {
	table := model.CourseTable{}
	for _, e := range enrollments {
		table.Add(e)
	}
	return table
}

// BuildMemberTable regroups the finished course table by member name. A
// course with a single enrollment is no overlap and is left out entirely;
// overlapping records are shared by reference across all of their members.
// Ordering is left to the renderer.
func BuildMemberTable(table model.CourseTable) model.MemberTable {
	members := model.MemberTable{}
	for _, record := range table {
		if len(record.Members) < 2 {
			continue
		}
		for _, m := range record.Members {
			members[m.Name] = append(members[m.Name], record)
		}
	}
	return members
}
