// Package data provides tabular column stores for chart layers:
// an in-memory Frame plus CSV and XLSX readers.
package data

import (
	"fmt"
	"time"
)

// Kind is the semantic type of a column.
type Kind int

const (
	Number Kind = iota
	String
	Time
)

func (k Kind) String() string {
	return []string{"number", "string", "time"}[int(k)]
}

// A Table is a read-only column store: named columns, each with a
// declared semantic kind, all of equal length.
type Table interface {
	// Columns lists the column names in their original order.
	Columns() []string

	// Kind returns the semantic type of the named column; ok is
	// false when the column does not exist.
	Kind(col string) (Kind, bool)

	// Len is the row count.
	Len() int

	// Floats returns the numeric values of a Number column.
	Floats(col string) ([]float64, error)

	// Strings returns the values of a String column.
	Strings(col string) ([]string, error)

	// Times returns the values of a Time column.
	Times(col string) ([]time.Time, error)
}

// A Frame is the in-memory Table implementation. Build one with New
// and the Add* methods; columns keep their insertion order.
type Frame struct {
	names   []string
	kinds   map[string]Kind
	floats  map[string][]float64
	strings map[string][]string
	times   map[string][]time.Time
	rows    int
	set     bool
}

// New returns an empty frame.
func New() *Frame {
	return &Frame{
		kinds:   make(map[string]Kind),
		floats:  make(map[string][]float64),
		strings: make(map[string][]string),
		times:   make(map[string][]time.Time),
	}
}

func (f *Frame) checkLen(name string, n int) {
	if !f.set {
		f.rows, f.set = n, true
		return
	}
	if n != f.rows {
		panic(fmt.Sprintf("data: column %s has %d rows, frame has %d", name, n, f.rows))
	}
}

func (f *Frame) record(name string, k Kind) {
	if _, ok := f.kinds[name]; !ok {
		f.names = append(f.names, name)
	}
	f.kinds[name] = k
}

// AddFloats adds a numeric column. All columns of a frame must have
// the same length.
func (f *Frame) AddFloats(name string, values []float64) *Frame {
	f.checkLen(name, len(values))
	f.record(name, Number)
	f.floats[name] = values
	return f
}

// AddStrings adds a categorical column.
func (f *Frame) AddStrings(name string, values []string) *Frame {
	f.checkLen(name, len(values))
	f.record(name, String)
	f.strings[name] = values
	return f
}

// AddTimes adds a temporal column.
func (f *Frame) AddTimes(name string, values []time.Time) *Frame {
	f.checkLen(name, len(values))
	f.record(name, Time)
	f.times[name] = values
	return f
}

func (f *Frame) Columns() []string { return f.names }

func (f *Frame) Kind(col string) (Kind, bool) {
	k, ok := f.kinds[col]
	return k, ok
}

func (f *Frame) Len() int { return f.rows }

func (f *Frame) Floats(col string) ([]float64, error) {
	if v, ok := f.floats[col]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("data: no numeric column %q", col)
}

func (f *Frame) Strings(col string) ([]string, error) {
	if v, ok := f.strings[col]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("data: no string column %q", col)
}

func (f *Frame) Times(col string) ([]time.Time, error) {
	if v, ok := f.times[col]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("data: no time column %q", col)
}
