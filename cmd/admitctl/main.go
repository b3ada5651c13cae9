// Command admitctl is the operator console: first-round rankings and
// examination-number band occupancy, straight from the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/bamdoliro/marugo/internal/db"
	"github.com/bamdoliro/marugo/internal/form"
)

func init() {
	// .env is optional here; env vars win either way.
	_ = godotenv.Load()
}

func main() {
	var (
		driver = flag.String("driver", envOr("DB_DRIVER", "sqlite"), "db driver (sqlite|postgres)")
		dsn    = flag.String("dsn", os.Getenv("DB_DSN"), "db dsn")
		cmd    = flag.String("cmd", "rankings", "command: rankings|bands")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(*driver), *dsn)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	store := form.NewSQLStore(dbh)

	switch *cmd {
	case "rankings":
		printRankings(ctx, store)
	case "bands":
		printBands(ctx, store)
	default:
		log.Fatalf("unknown command %q", *cmd)
	}
}

func printRankings(ctx context.Context, store *form.SQLStore) {
	sums, err := store.ListSummaries(ctx)
	if err != nil {
		log.Fatalf("list forms: %v", err)
	}

	byCategory := map[form.FormCategory][]form.Summary{}
	for _, s := range sums {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	for _, cat := range []form.FormCategory{
		form.CategoryRegular, form.CategoryMeisterTalent,
		form.CategorySocialIntegration, form.CategorySupernumerary,
	} {
		list := byCategory[cat]
		if len(list) == 0 {
			continue
		}
		color.Yellow("\n%s (%d applicants)", cat, len(list))

		// ListSummaries orders by examination number; re-rank by score.
		sortByScore(list)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Rank", "Exam No", "Name", "Track", "First Round", "Status"})
		for i, s := range list {
			table.Append([]string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", s.ExaminationNumber),
				s.Name,
				string(s.Type),
				fmt.Sprintf("%.3f", s.FirstRoundScore),
				string(s.Status),
			})
		}
		table.Render()
	}
}

func printBands(ctx context.Context, store *form.SQLStore) {
	sums, err := store.ListSummaries(ctx)
	if err != nil {
		log.Fatalf("list forms: %v", err)
	}

	used := map[form.FormCategory]int{}
	for _, s := range sums {
		used[s.Category]++
	}

	color.Cyan("\nExamination-number band occupancy")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Band", "Used", "Free"})
	for _, cat := range []form.FormCategory{
		form.CategoryRegular, form.CategoryMeisterTalent,
		form.CategorySocialIntegration, form.CategorySupernumerary,
	} {
		res, err := form.Resolve(trackFor(cat))
		if err != nil {
			continue
		}
		table.Append([]string{
			string(cat),
			fmt.Sprintf("%d-%d", res.BandStart+1, res.BandStart+form.BandSize),
			fmt.Sprintf("%d", used[cat]),
			fmt.Sprintf("%d", form.BandSize-used[cat]),
		})
	}
	table.Render()
}

// trackFor picks a representative track per category, to look up the
// category's band.
func trackFor(cat form.FormCategory) form.FormType {
	switch cat {
	case form.CategoryMeisterTalent:
		return form.TypeMeisterTalent
	case form.CategorySocialIntegration:
		return form.TypeOneParent
	case form.CategorySupernumerary:
		return form.TypeSpecialAdmission
	default:
		return form.TypeRegular
	}
}

func sortByScore(list []form.Summary) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].FirstRoundScore > list[j].FirstRoundScore
	})
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
