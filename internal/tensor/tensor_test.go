package tensor

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate({2,3}) = %v, want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate({2,0}) = nil, want error")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("Validate({-1}) = nil, want error")
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("Equal({2,3}, {2,3}) = false, want true")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("Equal({2,3}, {3,2}) = true, want false")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("Equal({2,3}, {2,3,1}) = true, want false")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides({2,3,4}) = %v, want %v", strides, want)
			break
		}
	}
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %v, want 6", x.At(1, 2))
	}

	// Length/shape disagreement
	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 3})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("FromSlice with 3 elements into {2,3} = %v, want ErrShapeMismatch", err)
	}
}

func TestFromSliceCopies(t *testing.T) {
	data := []float64{1, 2}
	x, _ := FromSlice(data, Shape{2})
	data[0] = 99
	if x.At(0) != 1 {
		t.Error("FromSlice should copy the input slice")
	}
}

func TestCreation(t *testing.T) {
	z := Zeros(Shape{2, 2})
	for _, v := range z.Data() {
		if v != 0 {
			t.Fatal("Zeros should be all zero")
		}
	}
	o := Ones(Shape{3})
	for _, v := range o.Data() {
		if v != 1 {
			t.Fatal("Ones should be all one")
		}
	}
	f := Full(Shape{2}, 3.14)
	for _, v := range f.Data() {
		if v != 3.14 {
			t.Fatal("Full should fill with the given value")
		}
	}
}

func TestAtSet(t *testing.T) {
	x := New(2, 3)
	x.Set(7.5, 1, 0)
	if x.At(1, 0) != 7.5 {
		t.Errorf("At(1,0) = %v, want 7.5", x.At(1, 0))
	}
	if x.Data()[3] != 7.5 {
		t.Errorf("flat index 3 = %v, want 7.5 (row-major layout)", x.Data()[3])
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At with out-of-bounds index should panic")
		}
	}()
	New(2, 3).At(2, 0)
}

func TestClone(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	y := x.Clone()
	y.Set(99, 0, 0)
	if x.At(0, 0) != 1 {
		t.Error("Clone should not share data with the original")
	}
}

func TestReshape(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{6})
	y, err := x.Reshape(2, 3)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if !y.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Reshape shape = %v, want {2,3}", y.Shape())
	}
	// Shares data with the original.
	y.Set(42, 0, 0)
	if x.At(0) != 42 {
		t.Error("Reshape should share data")
	}

	_, err = x.Reshape(4, 2)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Reshape {6} into {4,2} = %v, want ErrShapeMismatch", err)
	}
}

func TestMatMul(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	b, _ := FromSlice([]float64{7, 8, 9, 10, 11, 12}, Shape{3, 2})

	c, err := MatMul(a, b)
	if err != nil {
		t.Fatalf("MatMul: %v", err)
	}
	if !c.Shape().Equal(Shape{2, 2}) {
		t.Fatalf("MatMul shape = %v, want {2,2}", c.Shape())
	}
	want := []float64{58, 64, 139, 154}
	for i, w := range want {
		if c.Data()[i] != w {
			t.Errorf("MatMul[%d] = %v, want %v", i, c.Data()[i], w)
		}
	}
}

func TestMatMulErrors(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	v, _ := FromSlice([]float64{1, 2}, Shape{2})
	if _, err := MatMul(a, v); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("MatMul with rank-1 operand = %v, want ErrShapeMismatch", err)
	}

	b, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	if _, err := MatMul(b, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("MatMul with mismatched inner dims = %v, want ErrShapeMismatch", err)
	}
}

func TestAdd(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]float64{10, 20, 30, 40}, Shape{2, 2})

	c, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := []float64{11, 22, 33, 44}
	for i, w := range want {
		if c.Data()[i] != w {
			t.Errorf("Add[%d] = %v, want %v", i, c.Data()[i], w)
		}
	}
	// Operands untouched.
	if a.At(0, 0) != 1 || b.At(0, 0) != 10 {
		t.Error("Add should not mutate its operands")
	}
}

func TestAddBiasBroadcast(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	bias, _ := FromSlice([]float64{10, 20, 30}, Shape{3})

	c, err := Add(a, bias)
	if err != nil {
		t.Fatalf("Add broadcast: %v", err)
	}
	want := []float64{11, 22, 33, 14, 25, 36}
	for i, w := range want {
		if c.Data()[i] != w {
			t.Errorf("Add broadcast[%d] = %v, want %v", i, c.Data()[i], w)
		}
	}
}

func TestAddErrors(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	wrong, _ := FromSlice([]float64{1, 2}, Shape{2})
	if _, err := Add(a, wrong); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Add {2,3}+{2} = %v, want ErrShapeMismatch", err)
	}
}

func TestMul(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]float64{2, 2, 0.5, 0.5}, Shape{2, 2})

	c, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	want := []float64{2, 4, 1.5, 2}
	for i, w := range want {
		if c.Data()[i] != w {
			t.Errorf("Mul[%d] = %v, want %v", i, c.Data()[i], w)
		}
	}

	v, _ := FromSlice([]float64{1, 2}, Shape{2})
	if _, err := Mul(a, v); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Mul {2,2}*{2} = %v, want ErrShapeMismatch", err)
	}
}

func TestTensorEqual(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, Shape{2})
	b, _ := FromSlice([]float64{1, 2}, Shape{2})
	c, _ := FromSlice([]float64{1, 2}, Shape{1, 2})
	d, _ := FromSlice([]float64{1, 3}, Shape{2})

	if !a.Equal(b) {
		t.Error("Equal(a, b) = false, want true")
	}
	if a.Equal(c) {
		t.Error("tensors with different shapes should not be Equal")
	}
	if a.Equal(d) {
		t.Error("tensors with different values should not be Equal")
	}
}
