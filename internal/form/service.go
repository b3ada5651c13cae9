package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service orchestrates form submission: track resolution, subject
// normalization, scoring, and the atomic persist-with-allocation step.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit creates the user's application. A user may submit at most once;
// a second attempt fails with ErrDuplicateSubmission and leaves the
// first record untouched.
func (s *Service) Submit(ctx context.Context, userUUID uuid.UUID, req SubmitFormRequest) error {
	res, err := Resolve(req.Type)
	if err != nil {
		return err
	}

	userID, err := s.store.FindUserID(ctx, userUUID)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	// Fast-path rejection. The UNIQUE(user_id) constraint inside
	// CreateForm closes the race two concurrent submissions would win.
	exists, err := s.store.ExistsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("check existing form: %w", err)
	}
	if exists {
		return ErrDuplicateSubmission
	}

	subjects := NormalizeSubjects(req.Grade.SubjectList)
	breakdown := ComputeBreakdown(res.Mode, req.Education.GraduationType, req.Grade, subjects)

	rec := newRecord(userID, req, breakdown)
	if _, err := s.store.CreateForm(ctx, res.BandStart, rec, subjects); err != nil {
		return err
	}
	return nil
}

// Get returns the caller's application with its subject list.
func (s *Service) Get(ctx context.Context, userUUID uuid.UUID) (*Record, []GradedSubject, error) {
	userID, err := s.store.FindUserID(ctx, userUUID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve user: %w", err)
	}
	return s.store.GetByUser(ctx, userID)
}

// List returns summaries of all applications, for the admin surface.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.store.ListSummaries(ctx)
}

func newRecord(userID int64, req SubmitFormRequest, b Breakdown) *Record {
	return &Record{
		UserID:           userID,
		Type:             req.Type,
		OriginalType:     req.Type,
		Status:           StatusSubmitted,
		ChangedToRegular: false,

		Name:        req.Applicant.Name,
		PhoneNumber: req.Applicant.PhoneNumber,
		Birthday:    req.Applicant.Birthday,
		Gender:      req.Applicant.Gender,

		ParentName:        req.Parent.Name,
		ParentPhoneNumber: req.Parent.PhoneNumber,
		ParentRelation:    req.Parent.Relation,
		ZoneCode:          req.Parent.ZoneCode,
		Address:           req.Parent.Address,
		DetailAddress:     req.Parent.DetailAddress,

		GraduationType:           req.Education.GraduationType,
		GraduationYear:           req.Education.GraduationYear,
		SchoolName:               req.Education.SchoolName,
		SchoolLocation:           req.Education.SchoolLocation,
		SchoolAddress:            req.Education.SchoolAddress,
		SchoolCode:               req.Education.SchoolCode,
		TeacherName:              req.Education.TeacherName,
		TeacherPhoneNumber:       req.Education.TeacherPhoneNumber,
		TeacherMobilePhoneNumber: req.Education.TeacherMobilePhoneNumber,

		CoverLetter:        req.Document.CoverLetter,
		StatementOfPurpose: req.Document.StatementOfPurpose,

		Attendance1:    req.Grade.Attendance1,
		Attendance2:    req.Grade.Attendance2,
		Attendance3:    req.Grade.Attendance3,
		VolunteerTime1: req.Grade.VolunteerTime1,
		VolunteerTime2: req.Grade.VolunteerTime2,
		VolunteerTime3: req.Grade.VolunteerTime3,

		SubjectGradeScore:            b.SubjectGrade,
		ThirdGradeFirstSemesterScore: b.ThirdGradeFirstSemester,
		AttendanceScore:              b.Attendance,
		VolunteerScore:               b.Volunteer,
		BonusScore:                   b.Bonus,
		FirstRoundScore:              b.FirstRound,
	}
}
