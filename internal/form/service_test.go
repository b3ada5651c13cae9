package form

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeStore struct {
	userID int64
	exists bool

	createCalled bool
	gotBandStart int64
	gotRecord    *Record
	gotSubjects  []GradedSubject
	createErr    error
}

func (f *fakeStore) FindUserID(ctx context.Context, userUUID uuid.UUID) (int64, error) {
	return f.userID, nil
}

func (f *fakeStore) ExistsByUser(ctx context.Context, userID int64) (bool, error) {
	return f.exists, nil
}

func (f *fakeStore) CreateForm(ctx context.Context, bandStart int64, rec *Record, subjects []GradedSubject) (int64, error) {
	f.createCalled = true
	f.gotBandStart = bandStart
	f.gotRecord = rec
	f.gotSubjects = subjects
	if f.createErr != nil {
		return 0, f.createErr
	}
	rec.ExaminationNumber = bandStart + 1
	return 1, nil
}

func (f *fakeStore) GetByUser(ctx context.Context, userID int64) (*Record, []GradedSubject, error) {
	if f.gotRecord == nil {
		return nil, nil, ErrNotFound
	}
	return f.gotRecord, f.gotSubjects, nil
}

func (f *fakeStore) ListSummaries(ctx context.Context) ([]Summary, error) {
	return nil, nil
}

func submitRequest(track FormType) SubmitFormRequest {
	return SubmitFormRequest{
		Type: track,
		Applicant: ApplicantRequest{
			Name: "김마루", PhoneNumber: "01012345678", Birthday: "2011-03-02", Gender: GenderMale,
		},
		Parent: ParentRequest{Name: "김부모", PhoneNumber: "01087654321", Relation: "부"},
		Education: EducationRequest{
			GraduationType: GraduationExpected,
			GraduationYear: "2026",
		},
		Document: DocumentRequest{
			CoverLetter:        "자기소개서 본문",
			StatementOfPurpose: "학업계획서 본문",
		},
		Grade: GradeRequest{
			SubjectList: []SubjectRequest{
				{SubjectName: "수학", AchievementLevel21: levelPtr(LevelA), AchievementLevel22: levelPtr(LevelA), AchievementLevel31: levelPtr(LevelA)},
				{SubjectName: "국어", AchievementLevel21: levelPtr(LevelB), AchievementLevel22: levelPtr(LevelB), AchievementLevel31: levelPtr(LevelB)},
			},
			Attendance1:    attendance(0, 0, 0, 0),
			Attendance2:    attendance(0, 0, 0, 0),
			Attendance3:    attendance(0, 0, 0, 0),
			VolunteerTime1: intPtr(10), VolunteerTime2: intPtr(10), VolunteerTime3: intPtr(10),
		},
	}
}

func TestSubmitPersistsScoredRecord(t *testing.T) {
	store := &fakeStore{userID: 7}
	svc := NewService(store)

	if err := svc.Submit(context.Background(), uuid.New(), submitRequest(TypeRegular)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !store.createCalled {
		t.Fatal("CreateForm was not called")
	}
	if store.gotBandStart != 1000 {
		t.Fatalf("band start = %d, want 1000", store.gotBandStart)
	}

	rec := store.gotRecord
	if rec.UserID != 7 {
		t.Fatalf("user id = %d, want 7", rec.UserID)
	}
	if rec.Status != StatusSubmitted {
		t.Fatalf("status = %s, want SUBMITTED", rec.Status)
	}
	if rec.Type != TypeRegular || rec.OriginalType != TypeRegular || rec.ChangedToRegular {
		t.Fatalf("track fields = %s/%s/%v", rec.Type, rec.OriginalType, rec.ChangedToRegular)
	}
	if rec.CoverLetter != "자기소개서 본문" || rec.StatementOfPurpose != "학업계획서 본문" {
		t.Fatalf("document fields = %q / %q", rec.CoverLetter, rec.StatementOfPurpose)
	}
	if rec.SubjectGradeScore != 192 {
		t.Fatalf("subject grade score = %v, want 192", rec.SubjectGradeScore)
	}
	// 192 + attendance 18 + volunteer 18 + bonus 0.
	if rec.FirstRoundScore != 228 {
		t.Fatalf("first round score = %v, want 228", rec.FirstRoundScore)
	}
	if len(store.gotSubjects) != 6 {
		t.Fatalf("persisted %d subjects, want 6", len(store.gotSubjects))
	}
}

func TestSubmitUsesSpecialFormulaBand(t *testing.T) {
	store := &fakeStore{userID: 3}
	svc := NewService(store)

	if err := svc.Submit(context.Background(), uuid.New(), submitRequest(TypeMeisterTalent)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if store.gotBandStart != 2000 {
		t.Fatalf("band start = %d, want 2000", store.gotBandStart)
	}
	// 48 + 0.6*(192-80) = 115.2, plus 18 + 18.
	if store.gotRecord.FirstRoundScore != 151.2 {
		t.Fatalf("first round score = %v, want 151.2", store.gotRecord.FirstRoundScore)
	}
}

func TestSubmitRejectsSecondApplication(t *testing.T) {
	store := &fakeStore{userID: 7, exists: true}
	svc := NewService(store)

	err := svc.Submit(context.Background(), uuid.New(), submitRequest(TypeRegular))
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("err = %v, want ErrDuplicateSubmission", err)
	}
	if store.createCalled {
		t.Fatal("CreateForm called despite existing application")
	}
}

func TestSubmitRejectsUnknownTrack(t *testing.T) {
	store := &fakeStore{userID: 7}
	svc := NewService(store)

	err := svc.Submit(context.Background(), uuid.New(), submitRequest("SPORTS_TALENT"))
	if !errors.Is(err, ErrInvalidTrack) {
		t.Fatalf("err = %v, want ErrInvalidTrack", err)
	}
	if store.createCalled {
		t.Fatal("CreateForm called for unknown track")
	}
}

func TestSubmitSurfacesStoreDuplicate(t *testing.T) {
	// The store can still lose the race after the fast-path check.
	store := &fakeStore{userID: 7, createErr: ErrDuplicateSubmission}
	svc := NewService(store)

	err := svc.Submit(context.Background(), uuid.New(), submitRequest(TypeRegular))
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("err = %v, want ErrDuplicateSubmission", err)
	}
}
