package form

// Request payloads for form submission. Field names mirror the public
// application JSON; optional sections are pointers so an absent section
// is distinguishable from a zero-filled one.

type ApplicantRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Birthday    string `json:"birthday"` // YYYY-MM-DD
	Gender      Gender `json:"gender"`
}

type ParentRequest struct {
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	Relation      string `json:"relation"`
	ZoneCode      string `json:"zone_code"`
	Address       string `json:"address"`
	DetailAddress string `json:"detail_address"`
}

type EducationRequest struct {
	GraduationType           GraduationType `json:"graduation_type"`
	GraduationYear           string         `json:"graduation_year"`
	SchoolName               *string        `json:"school_name,omitempty"`
	SchoolLocation           *string        `json:"school_location,omitempty"`
	SchoolAddress            *string        `json:"school_address,omitempty"`
	SchoolCode               *string        `json:"school_code,omitempty"`
	TeacherName              *string        `json:"teacher_name,omitempty"`
	TeacherPhoneNumber       *string        `json:"teacher_phone_number,omitempty"`
	TeacherMobilePhoneNumber *string        `json:"teacher_mobile_phone_number,omitempty"`
}

// SubjectRequest carries either a single raw score (qualification-exam
// transcripts) or up to three per-term achievement levels.
type SubjectRequest struct {
	SubjectName        string            `json:"subject_name"`
	AchievementLevel21 *AchievementLevel `json:"achievement_level21,omitempty"`
	AchievementLevel22 *AchievementLevel `json:"achievement_level22,omitempty"`
	AchievementLevel31 *AchievementLevel `json:"achievement_level31,omitempty"`
	Score              *int              `json:"score,omitempty"`
}

type AttendanceRequest struct {
	AbsenceCount      int `json:"absence_count"`
	LatenessCount     int `json:"lateness_count"`
	EarlyLeaveCount   int `json:"early_leave_count"`
	ClassAbsenceCount int `json:"class_absence_count"`
}

type GradeRequest struct {
	SubjectList     []SubjectRequest   `json:"subject_list"`
	Attendance1     *AttendanceRequest `json:"attendance1,omitempty"`
	Attendance2     *AttendanceRequest `json:"attendance2,omitempty"`
	Attendance3     *AttendanceRequest `json:"attendance3,omitempty"`
	VolunteerTime1  *int               `json:"volunteer_time1,omitempty"`
	VolunteerTime2  *int               `json:"volunteer_time2,omitempty"`
	VolunteerTime3  *int               `json:"volunteer_time3,omitempty"`
	CertificateList []Certificate      `json:"certificate_list,omitempty"`
}

type DocumentRequest struct {
	CoverLetter        string `json:"cover_letter"`
	StatementOfPurpose string `json:"statement_of_purpose"`
}

type SubmitFormRequest struct {
	Applicant ApplicantRequest `json:"applicant"`
	Parent    ParentRequest    `json:"parent"`
	Education EducationRequest `json:"education"`
	Grade     GradeRequest     `json:"grade"`
	Document  DocumentRequest  `json:"document"`
	Type      FormType         `json:"type"`
}
