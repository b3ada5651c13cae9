package form

// Record is the persisted application. Created exactly once per user;
// second-round fields are entered later by reviewers and never written
// by the submission flow.
type Record struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"-"`
	ExaminationNumber int64      `json:"examination_number"`
	Type              FormType   `json:"type"`
	OriginalType      FormType   `json:"original_type"`
	Status            FormStatus `json:"status"`
	ChangedToRegular  bool       `json:"changed_to_regular"`

	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Birthday    string `json:"birthday"`
	Gender      Gender `json:"gender"`

	ParentName        string `json:"parent_name"`
	ParentPhoneNumber string `json:"parent_phone_number"`
	ParentRelation    string `json:"parent_relation"`
	ZoneCode          string `json:"zone_code"`
	Address           string `json:"address"`
	DetailAddress     string `json:"detail_address"`

	GraduationType           GraduationType `json:"graduation_type"`
	GraduationYear           string         `json:"graduation_year"`
	SchoolName               *string        `json:"school_name,omitempty"`
	SchoolLocation           *string        `json:"school_location,omitempty"`
	SchoolAddress            *string        `json:"school_address,omitempty"`
	SchoolCode               *string        `json:"school_code,omitempty"`
	TeacherName              *string        `json:"teacher_name,omitempty"`
	TeacherPhoneNumber       *string        `json:"teacher_phone_number,omitempty"`
	TeacherMobilePhoneNumber *string        `json:"teacher_mobile_phone_number,omitempty"`

	CoverLetter        string `json:"cover_letter"`
	StatementOfPurpose string `json:"statement_of_purpose"`

	// Raw attendance/volunteer input, kept verbatim for audit.
	Attendance1    *AttendanceRequest `json:"attendance1,omitempty"`
	Attendance2    *AttendanceRequest `json:"attendance2,omitempty"`
	Attendance3    *AttendanceRequest `json:"attendance3,omitempty"`
	VolunteerTime1 *int               `json:"volunteer_time1,omitempty"`
	VolunteerTime2 *int               `json:"volunteer_time2,omitempty"`
	VolunteerTime3 *int               `json:"volunteer_time3,omitempty"`

	SubjectGradeScore            float64  `json:"subject_grade_score"`
	ThirdGradeFirstSemesterScore *float64 `json:"third_grade_first_semester_subject_grade_score,omitempty"`
	AttendanceScore              int      `json:"attendance_score"`
	VolunteerScore               int      `json:"volunteer_score"`
	BonusScore                   int      `json:"bonus_score"`
	FirstRoundScore              float64  `json:"first_round_score"`
}

// Summary is the admin/list view of one application.
type Summary struct {
	ExaminationNumber int64        `json:"examination_number"`
	Name              string       `json:"name"`
	Type              FormType     `json:"type"`
	Category          FormCategory `json:"category"`
	FirstRoundScore   float64      `json:"first_round_score"`
	Status            FormStatus   `json:"status"`
}
