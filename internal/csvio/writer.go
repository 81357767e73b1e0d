package csvio

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/vess/classmate-finder/pkg/model"
)

const reportTitle = "[VESS 5기] 당신의 겹강을 찾아드립니다"

var memberBanner = strings.Repeat("=", 50)

// RenderCourseReport formats the course-grouped overlap report: the title
// banner, then one block per course in key order, blank line between blocks.
func RenderCourseReport(table model.CourseTable) string {
	var b strings.Builder
	b.WriteString(reportTitle + "\n\n")
	for _, record := range table.SortedRecords() {
		b.WriteString(record.TxtRecord())
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMemberReport formats the member-grouped overlap report. Per member:
//
//	==================================================
//	![임은성]'s overlap list!
//		[강의분류명] 초급프랑스어
//		이름: 임은성, 강의명: 초급프랑스어1, 분반: 003
//	==================================================
func RenderMemberReport(members model.MemberTable) string {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	slices.SortFunc(names, model.CompareKorean)

	var b strings.Builder
	b.WriteString(reportTitle + "\n\n")
	for _, name := range names {
		records := slices.Clone(members[name])
		slices.SortFunc(records, func(a *model.CourseRecord, b *model.CourseRecord) int {
			return model.CompareKorean(a.CourseName, b.CourseName)
		})
		b.WriteString(memberBanner + "\n")
		fmt.Fprintf(&b, "![%s]'s overlap list!\n", name)
		for _, record := range records {
			block := strings.TrimSuffix(record.TxtRecord(), "\n")
			for _, line := range strings.Split(block, "\n") {
				b.WriteString("\t" + line + "\n")
			}
		}
		b.WriteString(memberBanner + "\n\n")
	}
	return b.String()
}

// PrintCourses echoes the course-grouped view to the console, without the
// title banner, one blank line between blocks.
func PrintCourses(table model.CourseTable) {
	for _, record := range table.SortedRecords() {
		fmt.Print(record.TxtRecord())
		fmt.Println()
	}
}

// SaveCourseReport writes the course-grouped report to the given path,
// overwriting any previous run.
func SaveCourseReport(path string, table model.CourseTable) error {
	return os.WriteFile(path, []byte(RenderCourseReport(table)), 0644)
}

// SaveMemberReport writes the member-grouped report to the given path,
// overwriting any previous run.
func SaveMemberReport(path string, members model.MemberTable) error {
	return os.WriteFile(path, []byte(RenderMemberReport(members)), 0644)
}

// ExportEnrollments writes the normalized enrollment tuples back out as csv
// for further processing in spreadsheets.
func ExportEnrollments(path string, enrollments []*model.Enrollment) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.ModePerm)
	if err != nil {
		return err
	}
	defer out.Close()
	return gocsv.MarshalFile(&enrollments, out)
}
