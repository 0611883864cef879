package source

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"weekgrid/internal/domain"
)

// Document is the wire form of a week: day label to [start, end] pairs.
type Document map[string][][]string

// block is the validated shape of one [start, end] pair.
type block struct {
	Fields []string `validate:"len=2,dive,required,wall_time"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("wall_time", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseWallTime(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("register wall_time validation: %v", err))
	}
	return v
}

// Decode reads a schedule document from r and validates it against cal.
func Decode(r io.Reader, cal domain.Calendar) (domain.WeekInput, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(b, cal)
}

// DecodeBytes is Decode for an in-memory document.
func DecodeBytes(b []byte, cal domain.Calendar) (domain.WeekInput, error) {
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule document: %w", err)
	}
	if err := rejectRepeatedKeys(b); err != nil {
		return nil, err
	}
	return doc.WeekInput(cal)
}

// rejectRepeatedKeys walks the top-level object of an already valid document.
// Unmarshal keeps only the last of two identical keys, so repeats are caught here.
func rejectRepeatedKeys(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode schedule document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode schedule document: %w", err)
		}
		key, _ := tok.(string)
		if _, dup := seen[key]; dup {
			return &ValidationError{Day: key, Block: -1, Err: ErrDuplicateDay}
		}
		seen[key] = struct{}{}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode schedule document: %w", err)
		}
	}
	return nil
}

// WeekInput validates the document and converts it. Keys are matched against
// cal ignoring case and stored under their canonical label.
func (d Document) WeekInput(cal domain.Calendar) (domain.WeekInput, error) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	week := make(domain.WeekInput, len(d))
	for _, key := range keys {
		label, ok := cal.Lookup(key)
		if !ok {
			return nil, &ValidationError{Day: key, Block: -1, Err: ErrUnknownDay}
		}
		if _, dup := week[label]; dup {
			return nil, &ValidationError{Day: key, Block: -1, Err: ErrDuplicateDay}
		}
		sched, err := parseDay(key, d[key])
		if err != nil {
			return nil, err
		}
		week[label] = sched
	}
	return week, nil
}

func parseDay(day string, blocks [][]string) (domain.DaySchedule, error) {
	intervals := make([]domain.Interval, 0, len(blocks))
	for i, fields := range blocks {
		if err := validate.Struct(block{Fields: fields}); err != nil {
			return domain.DaySchedule{}, &ValidationError{Day: day, Block: i, Err: blockError(err)}
		}
		iv, err := domain.ParseInterval(fields[0], fields[1])
		if err != nil {
			return domain.DaySchedule{}, &ValidationError{Day: day, Block: i, Err: err}
		}
		if !iv.Start.Before(iv.End) {
			return domain.DaySchedule{}, &ValidationError{
				Day:   day,
				Block: i,
				Err:   fmt.Errorf("%w: %s", ErrInvertedInterval, iv),
			}
		}
		intervals = append(intervals, iv)
	}
	return domain.Present(intervals...), nil
}

// blockError turns the first validator failure into a domain-level error.
func blockError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "len":
		return ErrNotPair
	case "required", "wall_time":
		s, _ := fe.Value().(string)
		if _, perr := domain.ParseWallTime(s); perr != nil {
			return perr
		}
	}
	return err
}

// Encode renders week as an indented document, listing every calendar day.
func Encode(week domain.WeekInput, cal domain.Calendar) ([]byte, error) {
	doc := make(Document, len(cal))
	for _, day := range cal {
		sched := week.Day(day)
		blocks := make([][]string, 0, sched.Len())
		for i := 0; i < sched.Len(); i++ {
			iv := sched.At(i)
			blocks = append(blocks, []string{iv.Start.String(), iv.End.String()})
		}
		doc[day] = blocks
	}
	return json.MarshalIndent(doc, "", "  ")
}
