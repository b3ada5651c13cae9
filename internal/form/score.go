package form

import "math"

const (
	maxBonusScore = 4

	defaultAttendanceScore = 14
	maxAttendanceScore     = 18
	maxConvertedAbsences   = 16

	defaultVolunteerScore = 14
	maxVolunteerScore     = 18
	minVolunteerTime      = 15
	maxVolunteerTime      = 30

	regularBaseScore = 80.0
	specialBaseScore = 48.0
)

// Breakdown is the full first-round score decomposition. FirstRound is
// always the rounded sum of the four partial scores and is never set
// independently.
type Breakdown struct {
	SubjectGrade float64
	// ThirdGradeFirstSemester is round3 of the 3-1 term average,
	// reported for information only. Nil for qualification-exam
	// graduates, who have no term-tagged subjects.
	ThirdGradeFirstSemester *float64
	Attendance              int
	Volunteer               int
	Bonus                   int
	FirstRound              float64
}

// ComputeBreakdown derives all partial scores and the first-round total
// from the raw grade payload and the normalized subject list. Total over
// well-formed input; missing optional sections fall back to documented
// defaults rather than errors.
func ComputeBreakdown(mode ScoringMode, gradType GraduationType, grade GradeRequest, subjects []GradedSubject) Breakdown {
	subjectGrade := subjectGradeScore(mode, gradType, subjects)
	attendance := attendanceScore(gradType, grade)
	volunteer := volunteerScore(gradType, grade)
	bonus := bonusScore(grade.CertificateList)

	var thirdGradeFirst *float64
	if gradType != GraduationQualification {
		v := round3(termAverage(subjects, 3, 1))
		thirdGradeFirst = &v
	}

	return Breakdown{
		SubjectGrade:            round3(subjectGrade),
		ThirdGradeFirstSemester: thirdGradeFirst,
		Attendance:              attendance,
		Volunteer:               volunteer,
		Bonus:                   bonus,
		FirstRound:              round3(subjectGrade + float64(attendance) + float64(volunteer) + float64(bonus)),
	}
}

// subjectGradeScore applies the track formula. Qualification-exam
// graduates are scored on the overall average; everyone else on the
// three term averages, with the 3-1 term weighted triple.
func subjectGradeScore(mode ScoringMode, gradType GraduationType, subjects []GradedSubject) float64 {
	base := regularBaseScore
	if mode == ModeSpecialFormula {
		base = specialBaseScore
	}

	if gradType == GraduationQualification {
		avg := overallAverage(subjects)
		if mode == ModeSpecialFormula {
			return base + 14.4*avg
		}
		return base + 24.0*avg
	}

	s21 := termAverage(subjects, 2, 1)
	s22 := termAverage(subjects, 2, 2)
	s31 := termAverage(subjects, 3, 1)
	if mode == ModeSpecialFormula {
		return base + 2.88*(s21+s22) + 8.64*s31
	}
	return base + 4.8*(s21+s22) + 14.4*s31
}

// attendanceScore converts three terms of attendance tallies into a
// penalty score. Qualification-exam graduates, and applicants missing any
// term, get the fixed default; there is no partial-term handling.
func attendanceScore(gradType GraduationType, grade GradeRequest) int {
	if gradType == GraduationQualification {
		return defaultAttendanceScore
	}
	a1, a2, a3 := grade.Attendance1, grade.Attendance2, grade.Attendance3
	if a1 == nil || a2 == nil || a3 == nil {
		return defaultAttendanceScore
	}
	absence := a1.AbsenceCount + a2.AbsenceCount + a3.AbsenceCount
	lateness := a1.LatenessCount + a2.LatenessCount + a3.LatenessCount
	earlyLeave := a1.EarlyLeaveCount + a2.EarlyLeaveCount + a3.EarlyLeaveCount
	classAbsence := a1.ClassAbsenceCount + a2.ClassAbsenceCount + a3.ClassAbsenceCount

	converted := absence + (lateness+earlyLeave+classAbsence)/3
	if converted > maxConvertedAbsences {
		return 0
	}
	return maxAttendanceScore - converted
}

// volunteerScore converts total volunteer hours into a score. The .5
// boundary rounds half away from zero (math.Round), so 13.5 becomes 14.
func volunteerScore(gradType GraduationType, grade GradeRequest) int {
	if gradType == GraduationQualification ||
		grade.VolunteerTime1 == nil || grade.VolunteerTime2 == nil || grade.VolunteerTime3 == nil {
		return defaultVolunteerScore
	}
	total := *grade.VolunteerTime1 + *grade.VolunteerTime2 + *grade.VolunteerTime3
	switch {
	case total < minVolunteerTime:
		return 0
	case total > maxVolunteerTime:
		return maxVolunteerScore
	default:
		return int(math.Round(maxVolunteerScore - float64(maxVolunteerTime-total)*0.5))
	}
}

// bonusScore sums certificate points, capped at maxBonusScore. Repeated
// certificates stack; deduplication is left to the intake form.
func bonusScore(certs []Certificate) int {
	if len(certs) == 0 {
		return 0
	}
	sum := 0
	for _, c := range certs {
		sum += c.Bonus()
	}
	if sum > maxBonusScore {
		return maxBonusScore
	}
	return sum
}

// round3 rounds to three decimal places; applied to every reported float.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
