package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterHangul(t *testing.T) {
	t.Run("strips trailing numerals", func(t *testing.T) {
		assert.Equal(t, "초급프랑스어", FilterHangul("초급프랑스어1"))
	})

	t.Run("strips latin, punctuation and whitespace", func(t *testing.T) {
		assert.Equal(t, "초급프랑스어", FilterHangul("초급 프랑스어 A-1!"))
	})

	t.Run("pure latin label filters to empty key", func(t *testing.T) {
		assert.Equal(t, "", FilterHangul("Math101"))
	})

	t.Run("keeps every hangul syllable", func(t *testing.T) {
		assert.Equal(t, "과목가나", FilterHangul("과목(가01나)"))
	})
}

func TestCourseTable_Add(t *testing.T) {
	t.Run("creates record on first sight of a key", func(t *testing.T) {
		table := CourseTable{}
		table.Add(&Enrollment{Name: "임은성", Course: "초급프랑스어1", Section: "003"})

		require.Len(t, table, 1)
		record, ok := table["초급프랑스어"]
		require.True(t, ok)
		assert.Equal(t, "초급프랑스어", record.CourseName)
		require.Len(t, record.Members, 1)
	})

	t.Run("appends to the existing record for the same key", func(t *testing.T) {
		table := CourseTable{}
		first := &Enrollment{Name: "임은성", Course: "초급프랑스어1", Section: "003"}
		second := &Enrollment{Name: "김철수", Course: "초급프랑스어2", Section: "001"}
		table.Add(first)
		table.Add(second)

		require.Len(t, table, 1)
		record := table["초급프랑스어"]
		require.Len(t, record.Members, 2)
		assert.Same(t, first, record.Members[0])
		assert.Same(t, second, record.Members[1])
	})

	t.Run("first enrollment defines the course name", func(t *testing.T) {
		table := CourseTable{}
		table.Add(&Enrollment{Name: "임은성", Course: "초급프랑스어2", Section: "001"})
		table.Add(&Enrollment{Name: "김철수", Course: "초급프랑스어1", Section: "003"})

		assert.Equal(t, "초급프랑스어", table["초급프랑스어"].CourseName)
	})
}

func TestCourseTable_SortedRecords(t *testing.T) {
	table := CourseTable{}
	table.Add(&Enrollment{Name: "임은성", Course: "초급프랑스어1", Section: "003"})
	table.Add(&Enrollment{Name: "임은성", Course: "소프트웨어개발의원리와실제", Section: "001"})
	table.Add(&Enrollment{Name: "김철수", Course: "건축학개론", Section: "002"})

	records := table.SortedRecords()
	require.Len(t, records, 3)
	assert.Equal(t, "건축학개론", records[0].CourseName)
	assert.Equal(t, "소프트웨어개발의원리와실제", records[1].CourseName)
	assert.Equal(t, "초급프랑스어", records[2].CourseName)
}

func TestCourseRecord_TxtRecord(t *testing.T) {
	record := NewCourseRecord(&Enrollment{Name: "김철수", Course: "초급프랑스어2", Section: "001"})
	record.Append(&Enrollment{Name: "임은성", Course: "초급프랑스어1", Section: "003"})

	expected := "[강의분류명] 초급프랑스어\n" +
		"이름: 임은성, 강의명: 초급프랑스어1, 분반: 003\n" +
		"이름: 김철수, 강의명: 초급프랑스어2, 분반: 001\n"
	assert.Equal(t, expected, record.TxtRecord())

	// Sorting is stable across repeated renders
	assert.Equal(t, expected, record.TxtRecord())
}
