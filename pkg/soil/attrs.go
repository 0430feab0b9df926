package soil

import (
	"sort"
	"time"

	"github.com/coecms/soil-column/internal/ncio"
)

const modifiedTimeFormat = "Mon 02 Jan 2006 15:04:05 MST"

// depthComment describes the depth range of every composite field.
const depthComment = "Column of soil between 0 and 100 cm."

// VariableAttrs returns the descriptive attributes attached to one output
// variable.
func VariableAttrs(v Variable, fill float64) []ncio.Attr {
	return []ncio.Attr{
		{Name: "long_name", Value: v.LongName()},
		{Name: "units", Value: v.Unit()},
		{Name: "comment", Value: depthComment},
		{Name: "_FillValue", Value: []float64{fill}},
	}
}

// GlobalAttrs builds the dataset attributes: the source attributes are kept
// under original_* keys for provenance, the live fields are overwritten with
// the identity and processing description of this tool, and a note is
// prepended to the source history.
func GlobalAttrs(src map[string]string, now time.Time) []ncio.Attr {
	attrs := make(map[string]string, len(src)+8)
	for k, v := range src {
		attrs[k] = v
	}

	attrs["original_creator"] = src["creator"]
	attrs["original_institution"] = src["institution"]
	attrs["original_processing"] = "The source data was created with this processing.\n " + src["processing"]

	attrs["modified"] = "Claire Carouge, " + now.UTC().Format(modifiedTimeFormat)
	attrs["institution"] = "CLEX, UNSW"
	attrs["creator"] = "Claire Carouge"
	attrs["creator_email"] = "c.carouge@unsw.edu.au"
	attrs["source"] = "3x3minute regridded HWSD"
	attrs["title"] = "Whole soil column 3x3minute regridded HWSD"
	attrs["processing"] = "Weighted average of the top soil and subsoil data by the height of the top soil column and subsoil soil column.\n " +
		"All parameters are output in one netcdf file.\n"
	attrs["history"] = "Weighted average with soilcolumn\n " + src["history"]

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ncio.Attr, len(keys))
	for i, k := range keys {
		out[i] = ncio.Attr{Name: k, Value: attrs[k]}
	}

	return out
}
