// Package arrowset converts Apache Arrow columns into vqgo observation sets
// and codebooks back into Arrow arrays.
//
// A FixedSizeList<Float64|Float32> column yields one observation per list
// slot; a plain Float64 or Float32 column yields a one-dimensional set.
// Values are copied, so the returned sets stay valid after the Arrow arrays
// are released.
package arrowset

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hupe1980/vqgo"
)

var (
	// ErrNullValue is returned when a column contains a null slot or element.
	ErrNullValue = errors.New("arrowset: null value")

	// ErrUnsupportedType is returned for columns that are not numeric vectors
	// or scalars.
	ErrUnsupportedType = errors.New("arrowset: unsupported column type")

	// ErrColumnNotFound is returned when a record has no column of the given name.
	ErrColumnNotFound = errors.New("arrowset: column not found")
)

// FromRecord extracts the observation set stored in the named column of rec.
func FromRecord(rec arrow.Record, column string) (vqgo.ObservationSet, error) {
	indices := rec.Schema().FieldIndices(column)
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	return FromArray(rec.Column(indices[0]))
}

// FromArray dispatches on the array type.
func FromArray(arr arrow.Array) (vqgo.ObservationSet, error) {
	switch a := arr.(type) {
	case *array.FixedSizeList:
		return FromFixedSizeList(a)
	case *array.Float64:
		return FromFloat64(a)
	case *array.Float32:
		return FromFloat32(a)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, arr.DataType())
	}
}

// FromFixedSizeList converts each list slot into an observation.
func FromFixedSizeList(arr *array.FixedSizeList) (vqgo.ObservationSet, error) {
	listType, ok := arr.DataType().(*arrow.FixedSizeListType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, arr.DataType())
	}
	dim := int(listType.Len())

	var value func(j int) float64
	var isNull func(j int) bool
	switch values := arr.ListValues().(type) {
	case *array.Float64:
		value = values.Value
		isNull = values.IsNull
	case *array.Float32:
		value = func(j int) float64 { return float64(values.Value(j)) }
		isNull = values.IsNull
	default:
		return nil, fmt.Errorf("%w: list of %s", ErrUnsupportedType, listType.Elem())
	}

	n := arr.Len()
	data := make([]float64, n*dim)
	set := make(vqgo.ObservationSet, n)
	for i := range n {
		if arr.IsNull(i) {
			return nil, fmt.Errorf("%w: row %d", ErrNullValue, i)
		}

		start, _ := arr.ValueOffsets(i)
		row := data[i*dim : (i+1)*dim : (i+1)*dim]
		for d := range row {
			j := int(start) + d
			if isNull(j) {
				return nil, fmt.Errorf("%w: row %d, feature %d", ErrNullValue, i, d)
			}
			row[d] = value(j)
		}
		set[i] = row
	}

	return set, nil
}

// FromFloat64 converts a scalar column into a one-dimensional set.
func FromFloat64(arr *array.Float64) (vqgo.ObservationSet, error) {
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("%w: %d nulls in scalar column", ErrNullValue, arr.NullN())
	}
	return vqgo.Scalars(arr.Float64Values()...), nil
}

// FromFloat32 converts a scalar column into a one-dimensional set.
func FromFloat32(arr *array.Float32) (vqgo.ObservationSet, error) {
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("%w: %d nulls in scalar column", ErrNullValue, arr.NullN())
	}

	values := make([]float64, arr.Len())
	for i := range values {
		values[i] = float64(arr.Value(i))
	}
	return vqgo.Scalars(values...), nil
}

// CodebookToArrow builds a FixedSizeList<Float64> array holding one list per
// centroid. The caller owns the returned array and must Release it.
func CodebookToArrow(mem memory.Allocator, codebook vqgo.Codebook) (*array.FixedSizeList, error) {
	dim, err := codebook.Dimension()
	if err != nil {
		return nil, err
	}

	builder := array.NewFixedSizeListBuilder(mem, int32(dim), arrow.PrimitiveTypes.Float64)
	defer builder.Release()

	vb := builder.ValueBuilder().(*array.Float64Builder)
	vb.Reserve(len(codebook) * dim)
	for _, c := range codebook {
		builder.Append(true)
		vb.AppendValues(c, nil)
	}

	return builder.NewListArray(), nil
}
