package domain

import "context"

// ScheduleGenerator turns a free-form description of a week into a WeekInput.
type ScheduleGenerator interface {
	Generate(ctx context.Context, description string, cal Calendar) (WeekInput, error)
}

// Exporter writes a rendered grid to a destination file.
type Exporter interface {
	Export(path string, grid string) error
}
