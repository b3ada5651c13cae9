package form

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SQLStore persists applications on database/sql, against either the
// pgx stdlib driver or modernc sqlite. Both accept $N placeholders and
// RETURNING, so the statements are shared.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) FindUserID(ctx context.Context, userUUID uuid.UUID) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id FROM users WHERE uuid=$1`, userUUID.String()).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errors.New("user not found")
	}
	return id, err
}

func (s *SQLStore) ExistsByUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM forms WHERE user_id=$1)`, userID).Scan(&exists)
	return exists, err
}

// CreateForm runs the whole submission write in one transaction:
// duplicate check, number allocation, form insert, subject inserts.
// The per-band counter row is the serialization point; concurrent
// submissions in the same band queue on its row lock, so no two commits
// can carry the same examination number.
func (s *SQLStore) CreateForm(ctx context.Context, bandStart int64, rec *Record, subjects []GradedSubject) (formID int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists bool
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM forms WHERE user_id=$1)`, rec.UserID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("check existing form: %w", err)
	}
	if exists {
		err = ErrDuplicateSubmission
		return 0, err
	}

	number, err := allocateNumber(ctx, tx, bandStart)
	if err != nil {
		return 0, err
	}
	rec.ExaminationNumber = number

	formID, err = insertForm(ctx, tx, rec)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the duplicate race to a concurrent submission.
			err = ErrDuplicateSubmission
		}
		return 0, err
	}

	if err = insertSubjects(ctx, tx, formID, subjects); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	rec.ID = formID
	return formID, nil
}

// allocateNumber hands out the next free number in (bandStart,
// bandStart+BandSize]. The counter row is seeded from the highest
// already-issued number in the band, so the scheme stays correct over
// data that predates the counter table.
func allocateNumber(ctx context.Context, tx *sql.Tx, bandStart int64) (int64, error) {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO examination_counters (band_start, last_number)
		 SELECT $1, COALESCE(MAX(examination_number), $1)
		 FROM forms
		 WHERE examination_number > $1 AND examination_number <= $2
		 ON CONFLICT (band_start) DO NOTHING`,
		bandStart, bandStart+BandSize)
	if err != nil {
		return 0, fmt.Errorf("seed counter: %w", err)
	}

	var number int64
	err = tx.QueryRowContext(ctx,
		`UPDATE examination_counters SET last_number = last_number + 1
		 WHERE band_start=$1
		 RETURNING last_number`, bandStart).Scan(&number)
	if err != nil {
		return 0, fmt.Errorf("advance counter: %w", err)
	}
	if number > bandStart+BandSize {
		return 0, fmt.Errorf("%w: band %d", ErrBandExhausted, bandStart)
	}
	return number, nil
}

func insertForm(ctx context.Context, tx *sql.Tx, rec *Record) (int64, error) {
	now := time.Now().Unix()
	a1Abs, a1Late, a1Early, a1Class := attendanceCols(rec.Attendance1)
	a2Abs, a2Late, a2Early, a2Class := attendanceCols(rec.Attendance2)
	a3Abs, a3Late, a3Early, a3Class := attendanceCols(rec.Attendance3)

	var id int64
	err := tx.QueryRowContext(ctx, `INSERT INTO forms (
		user_id, examination_number, type, original_type, status, changed_to_regular,
		name, phone_number, birthday, gender,
		parent_name, parent_phone_number, parent_relation, zone_code, address, detail_address,
		graduation_type, graduation_year, school_name, school_location, school_address, school_code,
		teacher_name, teacher_phone_number, teacher_mobile_phone_number,
		cover_letter, statement_of_purpose,
		attendance1_absence_count, attendance1_lateness_count, attendance1_early_leave_count, attendance1_class_absence_count,
		attendance2_absence_count, attendance2_lateness_count, attendance2_early_leave_count, attendance2_class_absence_count,
		attendance3_absence_count, attendance3_lateness_count, attendance3_early_leave_count, attendance3_class_absence_count,
		volunteer_time1, volunteer_time2, volunteer_time3,
		subject_grade_score, third_grade_first_semester_subject_grade_score,
		attendance_score, volunteer_score, bonus_score, first_round_score,
		created_at, updated_at
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
		$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
		$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
		$31,$32,$33,$34,$35,$36,$37,$38,$39,$40,
		$41,$42,$43,$44,$45,$46,$47,$48,$49,$50
	) RETURNING form_id`,
		rec.UserID, rec.ExaminationNumber, string(rec.Type), string(rec.OriginalType), string(rec.Status), rec.ChangedToRegular,
		rec.Name, rec.PhoneNumber, rec.Birthday, string(rec.Gender),
		rec.ParentName, rec.ParentPhoneNumber, rec.ParentRelation, rec.ZoneCode, rec.Address, rec.DetailAddress,
		string(rec.GraduationType), rec.GraduationYear, rec.SchoolName, rec.SchoolLocation, rec.SchoolAddress, rec.SchoolCode,
		rec.TeacherName, rec.TeacherPhoneNumber, rec.TeacherMobilePhoneNumber,
		rec.CoverLetter, rec.StatementOfPurpose,
		a1Abs, a1Late, a1Early, a1Class,
		a2Abs, a2Late, a2Early, a2Class,
		a3Abs, a3Late, a3Early, a3Class,
		rec.VolunteerTime1, rec.VolunteerTime2, rec.VolunteerTime3,
		rec.SubjectGradeScore, rec.ThirdGradeFirstSemesterScore,
		rec.AttendanceScore, rec.VolunteerScore, rec.BonusScore, rec.FirstRoundScore,
		now, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert form: %w", err)
	}
	return id, nil
}

func insertSubjects(ctx context.Context, tx *sql.Tx, formID int64, subjects []GradedSubject) error {
	for _, s := range subjects {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO form_subjects (form_id, grade, semester, subject_name, achievement_level, score)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			formID, s.Grade, s.Semester, s.SubjectName, string(s.Level), s.RawScore)
		if err != nil {
			return fmt.Errorf("insert subject: %w", err)
		}
	}
	return nil
}

func (s *SQLStore) GetByUser(ctx context.Context, userID int64) (*Record, []GradedSubject, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		form_id, user_id, examination_number, type, original_type, status, changed_to_regular,
		name, phone_number, birthday, gender,
		parent_name, parent_phone_number, parent_relation, zone_code, address, detail_address,
		graduation_type, graduation_year, school_name, school_location, school_address, school_code,
		teacher_name, teacher_phone_number, teacher_mobile_phone_number,
		cover_letter, statement_of_purpose,
		attendance1_absence_count, attendance1_lateness_count, attendance1_early_leave_count, attendance1_class_absence_count,
		attendance2_absence_count, attendance2_lateness_count, attendance2_early_leave_count, attendance2_class_absence_count,
		attendance3_absence_count, attendance3_lateness_count, attendance3_early_leave_count, attendance3_class_absence_count,
		volunteer_time1, volunteer_time2, volunteer_time3,
		subject_grade_score, third_grade_first_semester_subject_grade_score,
		attendance_score, volunteer_score, bonus_score, first_round_score
	FROM forms WHERE user_id=$1`, userID)

	var rec Record
	var typ, origType, status, gender, gradType string
	var a1Abs, a1Late, a1Early, a1Class sql.NullInt64
	var a2Abs, a2Late, a2Early, a2Class sql.NullInt64
	var a3Abs, a3Late, a3Early, a3Class sql.NullInt64
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.ExaminationNumber, &typ, &origType, &status, &rec.ChangedToRegular,
		&rec.Name, &rec.PhoneNumber, &rec.Birthday, &gender,
		&rec.ParentName, &rec.ParentPhoneNumber, &rec.ParentRelation, &rec.ZoneCode, &rec.Address, &rec.DetailAddress,
		&gradType, &rec.GraduationYear, &rec.SchoolName, &rec.SchoolLocation, &rec.SchoolAddress, &rec.SchoolCode,
		&rec.TeacherName, &rec.TeacherPhoneNumber, &rec.TeacherMobilePhoneNumber,
		&rec.CoverLetter, &rec.StatementOfPurpose,
		&a1Abs, &a1Late, &a1Early, &a1Class,
		&a2Abs, &a2Late, &a2Early, &a2Class,
		&a3Abs, &a3Late, &a3Early, &a3Class,
		&rec.VolunteerTime1, &rec.VolunteerTime2, &rec.VolunteerTime3,
		&rec.SubjectGradeScore, &rec.ThirdGradeFirstSemesterScore,
		&rec.AttendanceScore, &rec.VolunteerScore, &rec.BonusScore, &rec.FirstRoundScore,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("fetch form: %w", err)
	}
	rec.Type = FormType(typ)
	rec.OriginalType = FormType(origType)
	rec.Status = FormStatus(status)
	rec.Gender = Gender(gender)
	rec.GraduationType = GraduationType(gradType)
	rec.Attendance1 = attendanceFromCols(a1Abs, a1Late, a1Early, a1Class)
	rec.Attendance2 = attendanceFromCols(a2Abs, a2Late, a2Early, a2Class)
	rec.Attendance3 = attendanceFromCols(a3Abs, a3Late, a3Early, a3Class)

	subjects, err := s.subjectsByForm(ctx, rec.ID)
	if err != nil {
		return nil, nil, err
	}
	return &rec, subjects, nil
}

func (s *SQLStore) subjectsByForm(ctx context.Context, formID int64) ([]GradedSubject, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT grade, semester, subject_name, achievement_level, score
		 FROM form_subjects WHERE form_id=$1 ORDER BY id`, formID)
	if err != nil {
		return nil, fmt.Errorf("fetch subjects: %w", err)
	}
	defer rows.Close()

	var out []GradedSubject
	for rows.Next() {
		var sub GradedSubject
		var level string
		if err := rows.Scan(&sub.Grade, &sub.Semester, &sub.SubjectName, &level, &sub.RawScore); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		sub.Level = AchievementLevel(level)
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListSummaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT examination_number, name, type, first_round_score, status
		 FROM forms ORDER BY examination_number`)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var typ, status string
		if err := rows.Scan(&sum.ExaminationNumber, &sum.Name, &typ, &sum.FirstRoundScore, &status); err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		sum.Type = FormType(typ)
		sum.Status = FormStatus(status)
		if res, err := Resolve(sum.Type); err == nil {
			sum.Category = res.Category
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func attendanceCols(a *AttendanceRequest) (absence, lateness, earlyLeave, classAbsence *int) {
	if a == nil {
		return nil, nil, nil, nil
	}
	return &a.AbsenceCount, &a.LatenessCount, &a.EarlyLeaveCount, &a.ClassAbsenceCount
}

func attendanceFromCols(absence, lateness, earlyLeave, classAbsence sql.NullInt64) *AttendanceRequest {
	if !absence.Valid {
		return nil
	}
	return &AttendanceRequest{
		AbsenceCount:      int(absence.Int64),
		LatenessCount:     int(lateness.Int64),
		EarlyLeaveCount:   int(earlyLeave.Int64),
		ClassAbsenceCount: int(classAbsence.Int64),
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
