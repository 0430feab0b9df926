package ncio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/pkg/errors"
)

// VarDef describes one variable of an output dataset. Values are stored as
// 64-bit floats.
type VarDef struct {
	Name  string
	Data  *sparse.DenseArray
	Attrs []Attr
}

// WriteDataset serializes a set of variables sharing the same axes, together
// with their attributes, into one NetCDF file in the store.
func (s *Store) WriteDataset(filename string, axes []Axis, vars []VarDef, global []Attr) error {
	if len(vars) == 0 {
		return errors.Wrap(ErrWrite, "no variables to write")
	}

	dimNames := make([]string, len(axes))
	lengths := make([]int, len(axes))
	for i, ax := range axes {
		dimNames[i] = ax.Name
		if ax.Values != nil {
			lengths[i] = len(ax.Values)
		} else {
			lengths[i] = vars[0].Data.Shape[i]
		}
	}
	for _, v := range vars {
		if len(v.Data.Shape) != len(lengths) {
			return errors.Wrapf(ErrWrite, "variable %s does not match the dataset axes", v.Name)
		}
		for i, l := range v.Data.Shape {
			if l != lengths[i] {
				return errors.Wrapf(ErrWrite, "variable %s does not match the dataset axes", v.Name)
			}
		}
	}

	h := cdf.NewHeader(dimNames, lengths)
	for _, a := range global {
		h.AddAttribute("", a.Name, a.Value)
	}
	for _, ax := range axes {
		if ax.Values == nil {
			continue
		}
		h.AddVariable(ax.Name, []string{ax.Name}, []float64{0.})
	}
	for _, v := range vars {
		h.AddVariable(v.Name, dimNames, []float64{0.})
		for _, a := range v.Attrs {
			h.AddAttribute(v.Name, a.Name, a.Value)
		}
	}
	h.Define()
	for _, err := range h.Check() {
		if err != nil {
			return errors.Wrapf(ErrWrite, "invalid header for %s: %v", filename, err)
		}
	}

	path := filepath.Join(s.dir, filename)
	ff, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}
	defer ff.Close()

	cf, err := cdf.Create(ff, h)
	if err != nil {
		return errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}

	for _, ax := range axes {
		if ax.Values == nil {
			continue
		}
		w := cf.Writer(ax.Name, nil, nil)
		if _, err := w.Write(ax.Values); err != nil && err != io.EOF {
			return errors.Wrapf(ErrWrite, "coordinate %s of %s: %v", ax.Name, path, err)
		}
	}
	for _, v := range vars {
		w := cf.Writer(v.Name, nil, nil)
		if _, err := w.Write(v.Data.Elements); err != nil && err != io.EOF {
			return errors.Wrapf(ErrWrite, "variable %s of %s: %v", v.Name, path, err)
		}
	}

	return nil
}
