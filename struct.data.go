package foxes

import (
	"fmt"
	"sort"
)

// Raw is an unvalidated input array handed to a Data container: a flat
// row-major value slice with its shape.
type Raw struct {
	Vals  []float64
	Shape []int
}

// Field is a named array within a Data container. X, Y and H may be bound
// as interleaved views into the TXYH composite, hence the offset/stride
// indexing; plain fields have off 0 and stride 1.
type Field struct {
	Vals   []float64
	Dims   []string
	shape  []int
	off    int
	stride int
}

func newField(r Raw, dims []string) *Field {
	return &Field{Vals: r.Vals, Dims: dims, shape: r.Shape, stride: 1}
}

// NewField wraps a contiguous row-major array as a field.
func NewField(vals []float64, dims []string, shape []int) *Field {
	return &Field{Vals: vals, Dims: dims, shape: shape, stride: 1}
}

// Shape returns the field's dimension sizes.
func (f *Field) Shape() []int { return f.shape }

// Len returns the number of elements spanned by the field.
func (f *Field) Len() int {
	n := 1
	for _, s := range f.shape {
		n *= s
	}
	return n
}

// At returns the element at flat (row-major) index i.
func (f *Field) At(i int) float64 { return f.Vals[f.off+i*f.stride] }

// Set writes the element at flat index i.
func (f *Field) Set(i int, v float64) { f.Vals[f.off+i*f.stride] = v }

// At2 returns element (i,j) of a rank-2 field.
func (f *Field) At2(i, j int) float64 { return f.At(i*f.shape[1] + j) }

// Set2 writes element (i,j) of a rank-2 field.
func (f *Field) Set2(i, j int, v float64) { f.Set(i*f.shape[1]+j, v) }

// At3 returns element (i,j,k) of a rank-3 field.
func (f *Field) At3(i, j, k int) float64 {
	return f.At((i*f.shape[1]+j)*f.shape[2] + k)
}

// Set3 writes element (i,j,k) of a rank-3 field.
func (f *Field) Set3(i, j, k int, v float64) {
	f.Set((i*f.shape[1]+j)*f.shape[2]+k, v)
}

// Fill sets every element of the field.
func (f *Field) Fill(v float64) {
	for i, n := 0, f.Len(); i < n; i++ {
		f.Set(i, v)
	}
}

// Copy returns a contiguous deep copy of the field.
func (f *Field) Copy() *Field {
	n := f.Len()
	o := &Field{Vals: make([]float64, n), Dims: append([]string{}, f.Dims...), shape: append([]int{}, f.shape...), stride: 1}
	for i := 0; i < n; i++ {
		o.Vals[i] = f.At(i)
	}
	return o
}

func (f *Field) hasDims(dims ...string) bool {
	if len(f.Dims) != len(dims) {
		return false
	}
	for i, d := range dims {
		if f.Dims[i] != d {
			return false
		}
	}
	return true
}

// Data holds one evaluation chunk's named arrays together with their
// declared dimensions and the resolved dimension sizes. Used for model
// data (per-state ambient arrays), farm data (state × turbine arrays) and
// point data (state × point arrays).
type Data struct {
	Name   string
	fields map[string]*Field
	sizes  map[string]int
}

// NewData validates and assembles a chunk data container. dims declares,
// per field, the dimension-name tuple its array spans. loopDims lists the
// dimensions along which the external chunking layer may have inserted
// broadcast axes of size 1 not reflected in the declared tuple; such axes
// are squeezed out before size resolution. Fields disagreeing on a shared
// dimension's size are a fatal data-consistency error.
func NewData(name string, data map[string]Raw, dims map[string][]string, loopDims []string) (*Data, error) {
	d := &Data{
		Name:   name,
		fields: make(map[string]*Field, len(data)),
		sizes:  make(map[string]int),
	}

	// deterministic pass order, construction must not depend on map order
	keys := make([]string, 0, len(data))
	for v := range data {
		keys = append(keys, v)
	}
	sort.Strings(keys)

	for _, v := range keys {
		r := data[v]
		dim, ok := dims[v]
		if !ok {
			return nil, fmt.Errorf(" foxes.NewData '%s': no dimensions declared for field '%s'", name, v)
		}

		// remove broadcast axes of size 1 added by the chunking layer
		if len(dim) != len(r.Shape) {
			shp := append([]int{}, r.Shape...)
			for li, l := range loopDims {
				if li < len(shp) && shp[li] == 1 && (len(dim) < li+1 || dim[li] != l) {
					shp = append(shp[:li], shp[li+1:]...)
				}
			}
			r = Raw{Vals: r.Vals, Shape: shp}
		}
		if len(dim) != len(r.Shape) {
			return nil, fmt.Errorf(" foxes.NewData '%s': field '%s' declares %d dimension(s) %v but has shape %v", name, v, len(dim), dim, r.Shape)
		}
		n := 1
		for _, s := range r.Shape {
			n *= s
		}
		if n != len(r.Vals) {
			return nil, fmt.Errorf(" foxes.NewData '%s': field '%s' shape %v does not span %d values", name, v, r.Shape, len(r.Vals))
		}

		f := newField(r, dim)
		if err := d.resolveSizes(v, f); err != nil {
			return nil, err
		}
		d.fields[v] = f
	}

	d.bindTXYH()
	return d, nil
}

func (d *Data) resolveSizes(v string, f *Field) error {
	for ci, c := range f.Dims {
		if s, ok := d.sizes[c]; !ok {
			d.sizes[c] = f.shape[ci]
		} else if s != f.shape[ci] {
			return fmt.Errorf(" foxes.Data '%s': inconsistent size for field '%s', dimension '%s': expecting %d, found %d in shape %v",
				d.Name, v, c, s, f.shape[ci], f.shape)
		}
	}
	return nil
}

// bindTXYH materializes the composite (x, y, hub height) position field
// when the three scalar coordinate fields are present with dimensions
// exactly (state, turbine), and rebinds the scalars as interleaved views so
// writes through any alias are visible through the others.
func (d *Data) bindTXYH() {
	x, y, h := d.fields[VarX], d.fields[VarY], d.fields[VarH]
	if x == nil || y == nil || h == nil {
		return
	}
	if !x.hasDims(DimState, DimTurbine) || !y.hasDims(DimState, DimTurbine) || !h.hasDims(DimState, DimTurbine) {
		return
	}

	ns, nt := d.sizes[DimState], d.sizes[DimTurbine]
	txyh := &Field{
		Vals:   make([]float64, ns*nt*3),
		Dims:   []string{DimState, DimTurbine, DimXYH},
		shape:  []int{ns, nt, 3},
		stride: 1,
	}
	for i := 0; i < ns*nt; i++ {
		txyh.Vals[i*3] = x.At(i)
		txyh.Vals[i*3+1] = y.At(i)
		txyh.Vals[i*3+2] = h.At(i)
	}
	d.fields[VarTXYH] = txyh
	d.sizes[DimXYH] = 3

	view := func(off int) *Field {
		return &Field{Vals: txyh.Vals, Dims: []string{DimState, DimTurbine}, shape: []int{ns, nt}, off: off, stride: 3}
	}
	d.fields[VarX] = view(0)
	d.fields[VarY] = view(1)
	d.fields[VarH] = view(2)
}

// Get returns a named field, nil if absent.
func (d *Data) Get(v string) *Field { return d.fields[v] }

// Has reports whether the container holds the named field.
func (d *Data) Has(v string) bool { _, ok := d.fields[v]; return ok }

// Vars returns the sorted field names.
func (d *Data) Vars() []string {
	vs := make([]string, 0, len(d.fields))
	for v := range d.fields {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

// Add validates and inserts a field, enforcing the shared-dimension size
// invariant against fields already held.
func (d *Data) Add(v string, f *Field) error {
	if err := d.resolveSizes(v, f); err != nil {
		return err
	}
	d.fields[v] = f
	return nil
}

// Update merges model results into the container in place.
func (d *Data) Update(res map[string]*Field) error {
	vs := make([]string, 0, len(res))
	for v := range res {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	for _, v := range vs {
		if err := d.Add(v, res[v]); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the resolved size of a dimension, 0 if the dimension does
// not occur in the chunk.
func (d *Data) Size(dim string) int { return d.sizes[dim] }

// NStates returns the number of states in the chunk.
func (d *Data) NStates() int { return d.sizes[DimState] }

// NTurbines returns the number of turbines in the chunk.
func (d *Data) NTurbines() int { return d.sizes[DimTurbine] }

// NPoints returns the number of evaluation points, 0 for farm chunks.
func (d *Data) NPoints() int { return d.sizes[DimPoint] }
