package form

import "fmt"

// FormType is the applicant's declared admission track.
type FormType string

const (
	TypeRegular                   FormType = "REGULAR"
	TypeMeisterTalent             FormType = "MEISTER_TALENT"
	TypeNationalBasicLiving       FormType = "NATIONAL_BASIC_LIVING"
	TypeNearPoverty               FormType = "NEAR_POVERTY"
	TypeNationalVeterans          FormType = "NATIONAL_VETERANS"
	TypeOneParent                 FormType = "ONE_PARENT"
	TypeFromNorthKorea            FormType = "FROM_NORTH_KOREA"
	TypeMulticultural             FormType = "MULTICULTURAL"
	TypeTeenHouseholder           FormType = "TEEN_HOUSEHOLDER"
	TypeMultiChildren             FormType = "MULTI_CHILDREN"
	TypeFarmingAndFishing         FormType = "FARMING_AND_FISHING"
	TypeNationalVeteransEducation FormType = "NATIONAL_VETERANS_EDUCATION"
	TypeSpecialAdmission          FormType = "SPECIAL_ADMISSION"
)

// FormCategory groups tracks for examination-number banding.
type FormCategory string

const (
	CategoryRegular           FormCategory = "REGULAR"
	CategoryMeisterTalent     FormCategory = "MEISTER_TALENT"
	CategorySocialIntegration FormCategory = "SOCIAL_INTEGRATION"
	CategorySupernumerary     FormCategory = "SUPERNUMERARY"
)

// ScoringMode selects which weighted-average constants apply.
type ScoringMode string

const (
	ModeRegularFormula ScoringMode = "regular"
	ModeSpecialFormula ScoringMode = "special"
)

// BandSize is the width of each category's examination-number band.
// Numbers are issued from bandStart+1 through bandStart+BandSize.
const BandSize = 1000

// Resolution is the full dispatch result for one admission track.
type Resolution struct {
	Category  FormCategory
	Mode      ScoringMode
	BandStart int64
}

// Resolve maps a track to its category, scoring mode and number band.
// The mapping is total over the enumerated tracks; anything else is
// rejected so a bad payload can never be scored under a guessed formula.
func Resolve(t FormType) (Resolution, error) {
	switch t {
	case TypeRegular:
		return Resolution{CategoryRegular, ModeRegularFormula, 1000}, nil
	case TypeMeisterTalent:
		return Resolution{CategoryMeisterTalent, ModeSpecialFormula, 2000}, nil
	case TypeNationalBasicLiving, TypeNearPoverty, TypeNationalVeterans,
		TypeOneParent, TypeFromNorthKorea, TypeMulticultural,
		TypeTeenHouseholder, TypeMultiChildren, TypeFarmingAndFishing:
		return Resolution{CategorySocialIntegration, ModeSpecialFormula, 3000}, nil
	case TypeNationalVeteransEducation, TypeSpecialAdmission:
		return Resolution{CategorySupernumerary, ModeRegularFormula, 4000}, nil
	}
	return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidTrack, string(t))
}

// Gender of the applicant.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// GraduationType of the applicant's middle-school education.
type GraduationType string

const (
	GraduationExpected      GraduationType = "EXPECTED"
	GraduationGraduated     GraduationType = "GRADUATED"
	GraduationQualification GraduationType = "QUALIFICATION_EXAMINATION"
)

// AchievementLevel is the per-subject ordinal grade A (best) through E.
type AchievementLevel string

const (
	LevelA AchievementLevel = "A"
	LevelB AchievementLevel = "B"
	LevelC AchievementLevel = "C"
	LevelD AchievementLevel = "D"
	LevelE AchievementLevel = "E"
)

// Weight returns the point value used in grade averaging.
func (l AchievementLevel) Weight() int {
	switch l {
	case LevelA:
		return 5
	case LevelB:
		return 4
	case LevelC:
		return 3
	case LevelD:
		return 2
	default:
		return 1
	}
}

// LevelFromScore converts a raw 0-100 score (qualification-exam
// transcripts) to an achievement level.
func LevelFromScore(score int) AchievementLevel {
	switch {
	case score >= 90:
		return LevelA
	case score >= 80:
		return LevelB
	case score >= 70:
		return LevelC
	case score >= 60:
		return LevelD
	default:
		return LevelE
	}
}

// Certificate is a bonus-point certificate type.
type Certificate string

const (
	CraftsmanInformationProcessing         Certificate = "CRAFTSMAN_INFORMATION_PROCESSING"
	CraftsmanInformationEquipmentOperation Certificate = "CRAFTSMAN_INFORMATION_EQUIPMENT_OPERATION"
	CraftsmanComputer                      Certificate = "CRAFTSMAN_COMPUTER"
	ComputerSpecialistLevel1               Certificate = "COMPUTER_SPECIALIST_LEVEL_1"
	ComputerSpecialistLevel2               Certificate = "COMPUTER_SPECIALIST_LEVEL_2"
	ComputerSpecialistLevel3               Certificate = "COMPUTER_SPECIALIST_LEVEL_3"
)

// Bonus returns the certificate's point value.
func (c Certificate) Bonus() int {
	switch c {
	case CraftsmanInformationProcessing, CraftsmanInformationEquipmentOperation, CraftsmanComputer:
		return 4
	case ComputerSpecialistLevel1:
		return 3
	case ComputerSpecialistLevel2:
		return 2
	case ComputerSpecialistLevel3:
		return 1
	default:
		return 0
	}
}

// FormStatus is the lifecycle state of a submitted application. Only
// StatusSubmitted is produced here; later states belong to the review
// workflow.
type FormStatus string

const (
	StatusSubmitted FormStatus = "SUBMITTED"
)
