package form

// coreSubject is the double-weighted quantitative subject. It counts
// twice in both the numerator and the denominator of every average.
const coreSubject = "수학"

// GradedSubject is one canonical subject/term observation. Grade 0 /
// semester 0 marks a converted entry derived from a raw numeric score;
// otherwise grade is 2 or 3 with semester 1 or 2.
type GradedSubject struct {
	Grade       int
	Semester    int
	SubjectName string
	Level       AchievementLevel

	// RawScore is kept for persistence only; nil unless the subject came
	// from the raw-score path.
	RawScore *int
}

func (s GradedSubject) weight() int {
	w := s.Level.Weight()
	if s.SubjectName == coreSubject {
		return w * 2
	}
	return w
}

func (s GradedSubject) count() int {
	if s.SubjectName == coreSubject {
		return 2
	}
	return 1
}

// NormalizeSubjects converts request rows into canonical graded subjects.
// A row with a raw score yields exactly one grade-0 subject; otherwise one
// subject per populated achievement field. Absent fields contribute
// nothing, so malformed or empty input simply yields fewer subjects.
func NormalizeSubjects(rows []SubjectRequest) []GradedSubject {
	var out []GradedSubject
	for _, row := range rows {
		if row.Score != nil {
			out = append(out, GradedSubject{
				Grade:       0,
				Semester:    0,
				SubjectName: row.SubjectName,
				Level:       LevelFromScore(*row.Score),
				RawScore:    row.Score,
			})
			continue
		}
		if row.AchievementLevel21 != nil {
			out = append(out, GradedSubject{Grade: 2, Semester: 1, SubjectName: row.SubjectName, Level: *row.AchievementLevel21})
		}
		if row.AchievementLevel22 != nil {
			out = append(out, GradedSubject{Grade: 2, Semester: 2, SubjectName: row.SubjectName, Level: *row.AchievementLevel22})
		}
		if row.AchievementLevel31 != nil {
			out = append(out, GradedSubject{Grade: 3, Semester: 1, SubjectName: row.SubjectName, Level: *row.AchievementLevel31})
		}
	}
	return out
}

// overallAverage is the weighted mean over all subjects. Used only for
// qualification-exam graduates, whose subjects carry no term tags.
func overallAverage(subjects []GradedSubject) float64 {
	total, count := 0, 0
	for _, s := range subjects {
		total += s.weight()
		count += s.count()
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// termAverage is the weighted mean restricted to one (grade, semester)
// term. A term with no subjects averages to 0.
func termAverage(subjects []GradedSubject, grade, semester int) float64 {
	total, count := 0, 0
	for _, s := range subjects {
		if s.Grade != grade || s.Semester != semester {
			continue
		}
		total += s.weight()
		count += s.count()
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
