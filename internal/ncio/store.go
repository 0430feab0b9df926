package ncio

import (
	"context"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// materializeLimit bounds how many files are read at once by MaterializeAll.
// Reading is the store's own concern; the pipeline on top stays sequential.
const materializeLimit = 4

// Store reads and writes gridded variables inside a base directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string { return s.dir }

// Handle is a lazily loaded gridded variable. Opening reads the header and
// coordinate axes only; Materialize reads the values.
type Handle struct {
	path     string
	variable string
	axes     []Axis
	lengths  []int
	fill     float64
	hasFill  bool
}

// Variable returns the name of the variable the handle points at.
func (h *Handle) Variable() string { return h.variable }

// Axes returns the coordinate axes of the variable.
func (h *Handle) Axes() []Axis { return h.axes }

// Open returns a lazy handle on one variable of one file in the store.
func (s *Store) Open(filename, variable string) (*Handle, error) {
	path := filepath.Join(s.dir, filename)
	ff, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrMissingInput, path)
		}

		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer ff.Close()

	cf, err := cdf.Open(ff)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read header of %s", path)
	}

	lengths := cf.Header.Lengths(variable)
	if len(lengths) == 0 {
		return nil, errors.Errorf("variable %s not in file %s", variable, path)
	}

	dims := cf.Header.Dimensions(variable)
	axes := make([]Axis, len(dims))
	for i, dim := range dims {
		vals, err := readCoordinate(cf, dim)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read coordinate %s of %s", dim, path)
		}
		axes[i] = Axis{Name: dim, Values: vals}
	}

	h := &Handle{
		path:     path,
		variable: variable,
		axes:     axes,
		lengths:  lengths,
	}
	for _, attr := range []string{"_FillValue", "missing_value"} {
		if fv, ok := attrFloat(cf.Header, variable, attr); ok {
			h.fill, h.hasFill = fv, true

			break
		}
	}

	return h, nil
}

// Materialize reads the variable into memory. Cells matching the source fill
// value decode to NaN.
func (h *Handle) Materialize() (*Grid, error) {
	ff, err := os.Open(h.path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", h.path)
	}
	defer ff.Close()

	cf, err := cdf.Open(ff)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read header of %s", h.path)
	}

	buf, err := readAll(cf, h.variable, h.lengths)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s from %s", h.variable, h.path)
	}

	data := sparse.ZerosDense(h.lengths...)
	for i, v := range buf {
		if h.hasFill && v == h.fill {
			data.Elements[i] = math.NaN()
		} else {
			data.Elements[i] = v
		}
	}

	return &Grid{Variable: h.variable, Axes: h.axes, Data: data}, nil
}

// MaterializeAll loads every handle into memory, preserving order.
func MaterializeAll(ctx context.Context, handles []*Handle) ([]*Grid, error) {
	grids := make([]*Grid, len(handles))

	errGrp, _ := errgroup.WithContext(ctx)
	errGrp.SetLimit(materializeLimit)
	for i, h := range handles {
		i, h := i, h
		errGrp.Go(func() error {
			g, err := h.Materialize()
			if err != nil {
				return err
			}
			grids[i] = g

			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	return grids, nil
}

// Aligned checks that every handle shares the coordinate axes of the first
// one, cell-for-cell.
func Aligned(handles ...*Handle) error {
	if len(handles) < 2 {
		return nil
	}
	ref := handles[0]
	for _, h := range handles[1:] {
		if !sameAxes(ref.axes, h.axes) {
			return errors.Wrapf(ErrMisalignedGrid, "%s and %s", ref.path, h.path)
		}
	}

	return nil
}

// GlobalAttrs returns the requested global string attributes of a file.
// Absent attributes are left out of the result.
func (s *Store) GlobalAttrs(filename string, keys ...string) (map[string]string, error) {
	path := filepath.Join(s.dir, filename)
	ff, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrMissingInput, path)
		}

		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer ff.Close()

	cf, err := cdf.Open(ff)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read header of %s", path)
	}

	attrs := make(map[string]string)
	for _, key := range keys {
		if v, ok := cf.Header.GetAttribute("", key).(string); ok {
			attrs[key] = v
		}
	}

	return attrs, nil
}

// readCoordinate reads the coordinate variable named after a dimension.
// Dimensions without a coordinate variable yield nil.
func readCoordinate(cf *cdf.File, dim string) ([]float64, error) {
	lengths := cf.Header.Lengths(dim)
	if len(lengths) == 0 {
		return nil, nil
	}

	return readAll(cf, dim, lengths)
}

func readAll(cf *cdf.File, variable string, lengths []int) ([]float64, error) {
	n := 1
	for _, l := range lengths {
		n *= l
	}

	r := cf.Reader(variable, nil, nil)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil && err != io.EOF {
		return nil, err
	}

	return toFloat64s(buf)
}

func toFloat64s(buf interface{}) ([]float64, error) {
	switch t := buf.(type) {
	case []float64:
		return t, nil
	case []float32:
		out := make([]float64, len(t))
		for i, v := range t {
			out[i] = float64(v)
		}

		return out, nil
	case []int32:
		out := make([]float64, len(t))
		for i, v := range t {
			out[i] = float64(v)
		}

		return out, nil
	case []int16:
		out := make([]float64, len(t))
		for i, v := range t {
			out[i] = float64(v)
		}

		return out, nil
	case []int8:
		out := make([]float64, len(t))
		for i, v := range t {
			out[i] = float64(v)
		}

		return out, nil
	default:
		return nil, errors.Errorf("unsupported variable type %T", buf)
	}
}

func attrFloat(h *cdf.Header, variable, attr string) (float64, bool) {
	switch t := h.GetAttribute(variable, attr).(type) {
	case []float64:
		if len(t) > 0 {
			return t[0], true
		}
	case []float32:
		if len(t) > 0 {
			return float64(t[0]), true
		}
	case []int32:
		if len(t) > 0 {
			return float64(t[0]), true
		}
	}

	return 0, false
}
