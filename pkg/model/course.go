package model

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Korean collation backs every ordering in the reports.
var collator = collate.New(language.Korean)

var notHangul = regexp.MustCompile("[^가-힣]+")

// CompareKorean orders two strings by Korean collation.
func CompareKorean(a string, b string) int {
	return collator.CompareString(a, b)
}

// FilterHangul keeps only the Hangul syllables of a course label. Labels of
// logically identical courses differ by numerals and section markers, so the
// filtered string serves as the grouping key.
func FilterHangul(label string) string {
	return notHangul.ReplaceAllString(label, "")
}

// CourseRecord holds every enrollment sharing one course key. The first
// enrollment added defines the displayed course name.
type CourseRecord struct {
	CourseName string
	Members    []*Enrollment
}

func NewCourseRecord(e *Enrollment) *CourseRecord {
	return &CourseRecord{
		CourseName: FilterHangul(e.Course),
		Members:    []*Enrollment{e},
	}
}

// Append adds another member to the course.
func (r *CourseRecord) Append(e *Enrollment) {
	r.Members = append(r.Members, e)
}

// SortMembers orders members by their full course label.
func (r *CourseRecord) SortMembers() {
	slices.SortStableFunc(r.Members, func(a *Enrollment, b *Enrollment) int {
		return CompareKorean(a.Course, b.Course)
	})
}

// TxtRecord renders the record as one report block:
//
//	[강의분류명] 초급프랑스어
//	이름: 임은성, 강의명: 초급프랑스어1, 분반: 003
func (r *CourseRecord) TxtRecord() string {
	r.SortMembers()
	var b strings.Builder
	fmt.Fprintf(&b, "[강의분류명] %s\n", r.CourseName)
	for _, m := range r.Members {
		fmt.Fprintf(&b, "이름: %s, 강의명: %s, 분반: %s\n", m.Name, m.Course, m.Section)
	}
	return b.String()
}

// CourseTable maps a course key to its record.
type CourseTable map[string]*CourseRecord

// Add looks up the record for the enrollment's course key and appends the
// enrollment to it, creating the record on first sight of the key.
func (t CourseTable) Add(e *Enrollment) {
	key := FilterHangul(e.Course)
	if rec, ok := t[key]; ok {
		rec.Append(e)
	} else {
		t[key] = NewCourseRecord(e)
	}
}

// SortedRecords returns the records ordered by course key.
func (t CourseTable) SortedRecords() []*CourseRecord {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareKorean)
	records := make([]*CourseRecord, 0, len(keys))
	for _, k := range keys {
		records = append(records, t[k])
	}
	return records
}
