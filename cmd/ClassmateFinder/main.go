package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vess/classmate-finder/internal/csvio"
	"github.com/vess/classmate-finder/internal/overlap"
)

// Program parameters
var cfg = &overlap.Configuration{
	NameColumn:       "이름",
	DefaultSection:   "001",
	ReportFile:       "겹강목록.txt",
	MemberReportFile: "겹강목록_by-member.txt",
	EnrollmentFile:   "수강목록.csv",
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: ClassmateFinder <filebase>")
		os.Exit(1)
	}
	filebase := os.Args[1]

	wd, err := os.Getwd()
	if err != nil {
		fatal(err)
	}

	// Parse enrollment tuples from the survey export
	enrollments, err := csvio.LoadEnrollments(cfg, wd, filebase)
	if err != nil {
		fatal(err)
	}

	// Group by course, then regroup actual overlaps by member
	courses := overlap.BuildCourseTable(enrollments)
	members := overlap.BuildMemberTable(courses)

	// Echo the course view before writing anything to disk
	csvio.PrintCourses(courses)

	if err := csvio.SaveCourseReport(filepath.Join(wd, cfg.ReportFile), courses); err != nil {
		fatal(err)
	}
	if err := csvio.SaveMemberReport(filepath.Join(wd, cfg.MemberReportFile), members); err != nil {
		fatal(err)
	}
	if err := csvio.ExportEnrollments(filepath.Join(wd, cfg.EnrollmentFile), enrollments); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Println(err)
	os.Exit(1)
}
