package form

import (
	"errors"
	"testing"
)

func TestResolveCoversEveryTrack(t *testing.T) {
	cases := []struct {
		track FormType
		cat   FormCategory
		mode  ScoringMode
		band  int64
	}{
		{TypeRegular, CategoryRegular, ModeRegularFormula, 1000},
		{TypeMeisterTalent, CategoryMeisterTalent, ModeSpecialFormula, 2000},
		{TypeNationalBasicLiving, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeNearPoverty, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeNationalVeterans, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeOneParent, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeFromNorthKorea, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeMulticultural, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeTeenHouseholder, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeMultiChildren, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeFarmingAndFishing, CategorySocialIntegration, ModeSpecialFormula, 3000},
		{TypeNationalVeteransEducation, CategorySupernumerary, ModeRegularFormula, 4000},
		{TypeSpecialAdmission, CategorySupernumerary, ModeRegularFormula, 4000},
	}
	for _, c := range cases {
		res, err := Resolve(c.track)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", c.track, err)
		}
		if res.Category != c.cat || res.Mode != c.mode || res.BandStart != c.band {
			t.Fatalf("Resolve(%s) = %+v, want {%s %s %d}", c.track, res, c.cat, c.mode, c.band)
		}
	}
}

func TestResolveRejectsUnknownTrack(t *testing.T) {
	for _, bad := range []FormType{"", "REGULAR ", "EXCHANGE_STUDENT"} {
		if _, err := Resolve(bad); !errors.Is(err, ErrInvalidTrack) {
			t.Fatalf("Resolve(%q) err = %v, want ErrInvalidTrack", bad, err)
		}
	}
}

func TestLevelFromScoreThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  AchievementLevel
	}{
		{100, LevelA}, {90, LevelA},
		{89, LevelB}, {80, LevelB},
		{79, LevelC}, {70, LevelC},
		{69, LevelD}, {60, LevelD},
		{59, LevelE}, {0, LevelE},
	}
	for _, c := range cases {
		if got := LevelFromScore(c.score); got != c.want {
			t.Fatalf("LevelFromScore(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestCertificateBonusValues(t *testing.T) {
	cases := []struct {
		cert Certificate
		want int
	}{
		{CraftsmanInformationProcessing, 4},
		{CraftsmanInformationEquipmentOperation, 4},
		{CraftsmanComputer, 4},
		{ComputerSpecialistLevel1, 3},
		{ComputerSpecialistLevel2, 2},
		{ComputerSpecialistLevel3, 1},
		{Certificate("DRIVING_LICENSE"), 0},
	}
	for _, c := range cases {
		if got := c.cert.Bonus(); got != c.want {
			t.Fatalf("%s bonus = %d, want %d", c.cert, got, c.want)
		}
	}
}
