package grid_test

import (
	"errors"
	"os"
	"slices"
	"strings"
	"sync"
	"testing"

	"weekgrid/internal/domain"
	"weekgrid/internal/grid"
)

func workWeek() domain.WeekInput {
	return domain.WeekInput{
		"Monday":    day("09:00 AM", "05:00 PM"),
		"Tuesday":   day("10:00 AM", "04:00 PM", "06:00 PM", "08:00 PM"),
		"Wednesday": day("09:00 AM", "05:00 PM"),
		"Thursday":  day("09:00 AM", "05:00 PM"),
		"Friday":    day("09:00 AM", "01:00 PM"),
	}
}

func TestRender_WorkWeekGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/workweek_coarse.golden")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	got, err := grid.Render(workWeek(), grid.Options{StartDay: "Monday"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != strings.TrimSuffix(string(want), "\n") {
		t.Fatalf("render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuild_WorkWeek(t *testing.T) {
	g, err := grid.Build(workWeek(), grid.Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Hours[0] != 9 || g.Hours[len(g.Hours)-1] != 20 {
		t.Fatalf("rows span %d..%d, want 9..20", g.Hours[0], g.Hours[len(g.Hours)-1])
	}

	tuesday, ok := g.Column("Tuesday")
	if !ok {
		t.Fatal("no Tuesday column")
	}
	for i, hour := range g.Hours {
		covered := (hour >= 10 && hour < 16) || (hour >= 18 && hour < 20)
		if (tuesday[i] == grid.Full) != covered {
			t.Fatalf("Tuesday %d:00 = %v, covered=%v", hour, tuesday[i], covered)
		}
	}

	friday, _ := g.Column("Friday")
	for i, hour := range g.Hours {
		covered := hour >= 9 && hour < 13
		if (friday[i] == grid.Full) != covered {
			t.Fatalf("Friday %d:00 = %v, covered=%v", hour, friday[i], covered)
		}
	}
}

func TestBuild_RotationOnlyMovesColumns(t *testing.T) {
	week := workWeek()
	base, err := grid.Build(week, grid.Options{Policy: grid.Fine})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, start := range domain.WorkWeek {
		g, err := grid.Build(week, grid.Options{StartDay: start, Policy: grid.Fine})
		if err != nil {
			t.Fatalf("Build(%s): %v", start, err)
		}
		if g.Days[0] != start {
			t.Fatalf("first column = %s, want %s", g.Days[0], start)
		}
		sorted := slices.Clone(g.Days)
		slices.Sort(sorted)
		want := slices.Clone([]string(domain.WorkWeek))
		slices.Sort(want)
		if !slices.Equal(sorted, want) {
			t.Fatalf("columns %v are not a permutation of the week", g.Days)
		}
		for _, d := range domain.WorkWeek {
			got, _ := g.Column(d)
			ref, _ := base.Column(d)
			if !slices.Equal(got, ref) {
				t.Fatalf("start %s: %s column changed: %v vs %v", start, d, got, ref)
			}
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	opts := grid.Options{StartDay: "Thursday", Policy: grid.Fine}
	first, err := grid.Render(workWeek(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var wg sync.WaitGroup
	outs := make([]string, 8)
	for i := range outs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i], _ = grid.Render(workWeek(), opts)
		}(i)
	}
	wg.Wait()
	for i, out := range outs {
		if out != first {
			t.Fatalf("render %d differs from the first", i)
		}
	}
}

func TestRender_AbsentDaysRenderEmpty(t *testing.T) {
	week := domain.WeekInput{
		"Wednesday": day("12:00 PM", "09:00 PM"),
		"Friday":    day("08:00 AM", "04:00 PM"),
	}
	g, err := grid.Build(week, grid.Options{StartDay: "Wednesday"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !slices.Equal(g.Days, []string{"Wednesday", "Thursday", "Friday", "Monday", "Tuesday"}) {
		t.Fatalf("columns = %v", g.Days)
	}
	for _, d := range []string{"Monday", "Tuesday", "Thursday"} {
		col, _ := g.Column(d)
		for i, m := range col {
			if m != grid.Empty {
				t.Fatalf("%s row %d = %v, want empty", d, i, m)
			}
		}
	}
	if g.Hours[0] != 8 || g.Hours[len(g.Hours)-1] != 21 {
		t.Fatalf("rows = %v", g.Hours)
	}
}

func TestBuild_MatchesDayKeysIgnoringCase(t *testing.T) {
	week := domain.WeekInput{
		"monday": day("09:00 AM", "11:00 AM"),
		"FRIDAY": day("10:00 AM", "12:00 PM"),
	}
	g, err := grid.Build(week, grid.Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Hours[0] != 9 || g.Hours[len(g.Hours)-1] != 12 {
		t.Fatalf("rows = %v", g.Hours)
	}
	monday, _ := g.Column("Monday")
	if monday[0] != grid.Full || monday[1] != grid.Full || monday[2] != grid.Empty {
		t.Fatalf("Monday = %v", monday)
	}
	friday, _ := g.Column("Friday")
	if friday[0] != grid.Empty || friday[1] != grid.Full {
		t.Fatalf("Friday = %v", friday)
	}
}

func TestRender_FineGlyphs(t *testing.T) {
	week := domain.WeekInput{"Monday": day("10:30 AM", "12:30 PM")}
	out, err := grid.Render(week, grid.Options{Policy: grid.Fine, Glyphs: grid.BlockGlyphs(4)})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"│ 10:00 AM │ ▄▄▄▄   │", "│ 11:00 AM │ ▀▀▀▀   │", "│ 12:00 PM │        │"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}

func TestRender_CustomCalendar(t *testing.T) {
	cal := domain.Calendar{"Sat", "Sun"}
	week := domain.WeekInput{"Sun": day("11:00 PM", "11:30 PM")}
	out, err := grid.Render(week, grid.Options{Calendar: cal, StartDay: "sun"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(strings.Split(out, "\n")[1], "│ Time     │ Sun") {
		t.Fatalf("unexpected header:\n%s", out)
	}
}

func TestRender_Errors(t *testing.T) {
	_, err := grid.Render(workWeek(), grid.Options{StartDay: "Sunday"})
	var de *domain.InvalidDayError
	if !errors.As(err, &de) {
		t.Fatalf("want InvalidDayError, got %v", err)
	}

	_, err = grid.Render(domain.WeekInput{"Monday": domain.Absent()}, grid.Options{})
	if !errors.Is(err, domain.ErrEmptySchedule) {
		t.Fatalf("want ErrEmptySchedule, got %v", err)
	}
}
