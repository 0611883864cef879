package grid

import "weekgrid/internal/domain"

// Options configure a render. The zero value renders the work week from its
// first day with the coarse policy and default block glyphs.
type Options struct {
	Calendar domain.Calendar
	StartDay string
	Policy   Policy
	Glyphs   Glyphs
}

func (o Options) calendar() domain.Calendar {
	if len(o.Calendar) == 0 {
		return domain.WorkWeek
	}
	return o.Calendar
}

func (o Options) glyphs() Glyphs {
	if o.Glyphs == (Glyphs{}) {
		return BlockGlyphs(DefaultCellWidth)
	}
	return o.Glyphs
}

// Grid holds the marks of a render before serialization.
// Marks is indexed [row][column], rows following Hours and columns following Days.
type Grid struct {
	Days  []string
	Hours []int
	Marks [][]Mark
}

// Build rotates the calendar, derives the hour range and marks every cell.
// Week keys are matched to calendar days ignoring case (see WeekInput.Canonical).
func Build(week domain.WeekInput, opts Options) (*Grid, error) {
	cal := opts.calendar()
	days, err := cal.Rotate(opts.StartDay)
	if err != nil {
		return nil, err
	}
	week = week.Canonical(cal)
	bounds, err := DeriveBounds(week, days)
	if err != nil {
		return nil, err
	}

	g := &Grid{Days: days, Hours: bounds.Hours()}
	g.Marks = make([][]Mark, len(g.Hours))
	for r, hour := range g.Hours {
		row := make([]Mark, len(days))
		for c, day := range days {
			row[c] = opts.Policy.Cell(hour, week.Day(day))
		}
		g.Marks[r] = row
	}
	return g, nil
}

// Column returns the marks of the named day, top to bottom.
func (g *Grid) Column(day string) ([]Mark, bool) {
	c := -1
	for i, d := range g.Days {
		if d == day {
			c = i
			break
		}
	}
	if c < 0 {
		return nil, false
	}
	out := make([]Mark, len(g.Hours))
	for r := range g.Hours {
		out[r] = g.Marks[r][c]
	}
	return out, true
}

// Format serializes the grid with a "Time" column followed by one column per day.
func (g *Grid) Format(glyphs Glyphs) string {
	header := append([]string{"Time"}, g.Days...)
	rows := make([][]string, len(g.Hours))
	for r, hour := range g.Hours {
		row := make([]string, 0, len(g.Days)+1)
		row = append(row, domain.HourLabel(hour))
		for _, m := range g.Marks[r] {
			row = append(row, glyphs.For(m))
		}
		rows[r] = row
	}
	return FormatTable(header, rows)
}

// Render builds and serializes week in one step.
func Render(week domain.WeekInput, opts Options) (string, error) {
	g, err := Build(week, opts)
	if err != nil {
		return "", err
	}
	return g.Format(opts.glyphs()), nil
}
