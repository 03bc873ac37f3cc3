// SPDX-License-Identifier: MIT

package lin

// normalize maps i ∈ [-extent, extent) to [0, extent); negative i counts from the end.
func normalize(i, extent int) (int, bool) {
	if i < 0 {
		i += extent
	}

	return i, i >= 0 && i < extent
}

// typed fails with ErrNoType for a nil or zero Tensor.
func (t *Tensor) typed(tag string) error {
	if t == nil || t.typ == nil {
		return linErrorf(tag, ErrNoType)
	}

	return nil
}

// Get returns the element at linear row-major position i ∈ [-Size, Size).
func (t *Tensor) Get(i int) (float64, error) {
	if err := t.typed("Get"); err != nil {
		return 0, err
	}
	k, ok := normalize(i, t.Size())
	if !ok {
		return 0, &IndexError{Axis: AxisLinear, Index: i, Extent: t.Size()}
	}

	return t.data()[k], nil
}

// Set stores x at linear position i ∈ [-Size, Size). Nothing is written on error.
func (t *Tensor) Set(i int, x float64) error {
	if err := t.typed("Set"); err != nil {
		return err
	}
	k, ok := normalize(i, t.Size())
	if !ok {
		return &IndexError{Axis: AxisLinear, Index: i, Extent: t.Size()}
	}
	t.data()[k] = x

	return nil
}

// offset normalizes (i, j) per axis; a failure names the axis, rows first.
func (t *Tensor) offset(i, j int) (int, error) {
	if err := t.typed("At"); err != nil {
		return 0, err
	}
	r, ok := normalize(i, t.Rows())
	if !ok {
		return 0, &IndexError{Axis: AxisRow, Index: i, Extent: t.Rows()}
	}
	c, ok := normalize(j, t.Cols())
	if !ok {
		return 0, &IndexError{Axis: AxisCol, Index: j, Extent: t.Cols()}
	}

	return r*t.Cols() + c, nil
}

// At returns the element at row i ∈ [-Rows, Rows), column j ∈ [-Cols, Cols).
func (t *Tensor) At(i, j int) (float64, error) {
	k, err := t.offset(i, j)
	if err != nil {
		return 0, err
	}

	return t.data()[k], nil
}

// SetAt stores x at (i, j) with the same index rules as At.
func (t *Tensor) SetAt(i, j int, x float64) error {
	k, err := t.offset(i, j)
	if err != nil {
		return err
	}
	t.data()[k] = x

	return nil
}
