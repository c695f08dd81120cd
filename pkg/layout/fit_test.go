package layout

import (
	"errors"
	"math"
	"testing"
)

func TestFit_NoneKeepsIntrinsicSize(t *testing.T) {
	intrinsic := NewSize(100, 50)
	availables := map[string]Size{
		"larger":        NewSize(400, 400),
		"smaller":       NewSize(10, 10),
		"unconstrained": NewSize(Infinite, Infinite),
		"zero":          NewSize(0, 0),
	}

	for name, available := range availables {
		t.Run(name, func(t *testing.T) {
			r := Fit(intrinsic, available, Unset, Unset, StretchNone)
			if r.Size != intrinsic {
				t.Errorf("Size = %+v, want %+v", r.Size, intrinsic)
			}
			if r.ScaleX != 1 || r.ScaleY != 1 {
				t.Errorf("scale = (%v, %v), want (1, 1)", r.ScaleX, r.ScaleY)
			}
			if !r.Valid {
				t.Error("Valid = false")
			}
		})
	}
}

func TestFit_UniformPreservesAspect(t *testing.T) {
	type tc struct {
		intrinsic Size
		available Size
	}

	tests := map[string]tc{
		"wide into square":   {intrinsic: NewSize(100, 50), available: NewSize(200, 200)},
		"tall into wide":     {intrinsic: NewSize(30, 90), available: NewSize(300, 60)},
		"shrink":             {intrinsic: NewSize(400, 300), available: NewSize(40, 40)},
		"fractional":         {intrinsic: NewSize(7, 3), available: NewSize(11.5, 2.25)},
		"exact aspect match": {intrinsic: NewSize(10, 20), available: NewSize(50, 100)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := Fit(tt.intrinsic, tt.available, Unset, Unset, StretchUniform)
			want := math.Min(tt.available.Width/tt.intrinsic.Width, tt.available.Height/tt.intrinsic.Height)
			if !approx(r.ScaleX, want) || !approx(r.ScaleY, want) {
				t.Errorf("scale = (%v, %v), want %v", r.ScaleX, r.ScaleY, want)
			}
			gotAspect := r.Size.Width / r.Size.Height
			wantAspect := tt.intrinsic.Width / tt.intrinsic.Height
			if !approx(gotAspect, wantAspect) {
				t.Errorf("aspect = %v, want %v", gotAspect, wantAspect)
			}
		})
	}
}

func TestFit_UniformToFillUsesMax(t *testing.T) {
	type tc struct {
		intrinsic Size
		available Size
	}

	tests := map[string]tc{
		"wide into square": {intrinsic: NewSize(100, 50), available: NewSize(200, 200)},
		"tall into wide":   {intrinsic: NewSize(30, 90), available: NewSize(300, 60)},
		"shrink":           {intrinsic: NewSize(400, 300), available: NewSize(40, 40)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := Fit(tt.intrinsic, tt.available, Unset, Unset, StretchUniformToFill)
			want := math.Max(tt.available.Width/tt.intrinsic.Width, tt.available.Height/tt.intrinsic.Height)
			if !approx(r.ScaleX, want) || !approx(r.ScaleY, want) {
				t.Errorf("scale = (%v, %v), want %v", r.ScaleX, r.ScaleY, want)
			}
			if !approx(r.Size.Width/r.Size.Height, tt.intrinsic.Width/tt.intrinsic.Height) {
				t.Errorf("aspect not preserved: %+v", r.Size)
			}
		})
	}
}

func TestFit_Scenarios(t *testing.T) {
	type tc struct {
		intrinsic      Size
		available      Size
		explicitWidth  float64
		explicitHeight float64
		policy         Stretch
		expectedScaleX float64
		expectedScaleY float64
		expectedSize   Size
	}

	tests := map[string]tc{
		"A uniform grows to fit": {
			intrinsic:      NewSize(100, 50),
			available:      NewSize(200, 200),
			explicitWidth:  Unset,
			explicitHeight: Unset,
			policy:         StretchUniform,
			expectedScaleX: 2,
			expectedScaleY: 2,
			expectedSize:   NewSize(200, 100),
		},
		"B uniform to fill covers": {
			intrinsic:      NewSize(100, 50),
			available:      NewSize(40, 40),
			explicitWidth:  Unset,
			explicitHeight: Unset,
			policy:         StretchUniformToFill,
			expectedScaleX: 0.8,
			expectedScaleY: 0.8,
			expectedSize:   NewSize(80, 40),
		},
		"C finite available wins over explicit": {
			intrinsic:      NewSize(20, 20),
			available:      NewSize(10, 10),
			explicitWidth:  30,
			explicitHeight: Unset,
			policy:         StretchFill,
			expectedScaleX: 0.5,
			expectedScaleY: 0.5,
			expectedSize:   NewSize(10, 10),
		},
		"C explicit used when available unconstrained": {
			intrinsic:      NewSize(20, 20),
			available:      NewSize(Infinite, Infinite),
			explicitWidth:  30,
			explicitHeight: Unset,
			policy:         StretchFill,
			expectedScaleX: 1.5,
			expectedScaleY: 1,
			expectedSize:   NewSize(30, 20),
		},
		"fill independent axes": {
			intrinsic:      NewSize(10, 20),
			available:      NewSize(30, 10),
			explicitWidth:  Unset,
			explicitHeight: Unset,
			policy:         StretchFill,
			expectedScaleX: 3,
			expectedScaleY: 0.5,
			expectedSize:   NewSize(30, 10),
		},
		"fully unconstrained falls back to 1": {
			intrinsic:      NewSize(10, 20),
			available:      NewSize(Infinite, Infinite),
			explicitWidth:  Unset,
			explicitHeight: Unset,
			policy:         StretchUniform,
			expectedScaleX: 1,
			expectedScaleY: 1,
			expectedSize:   NewSize(10, 20),
		},
		"uniform ignores unconstrained axis": {
			intrinsic:      NewSize(100, 50),
			available:      NewSize(Infinite, 100),
			explicitWidth:  Unset,
			explicitHeight: Unset,
			policy:         StretchUniform,
			expectedScaleX: 2,
			expectedScaleY: 2,
			expectedSize:   NewSize(200, 100),
		},
		"uniform to fill ignores unconstrained axis": {
			intrinsic:      NewSize(100, 50),
			available:      NewSize(Infinite, 25),
			explicitWidth:  Unset,
			explicitHeight: Unset,
			policy:         StretchUniformToFill,
			expectedScaleX: 0.5,
			expectedScaleY: 0.5,
			expectedSize:   NewSize(50, 25),
		},
		"zero intrinsic dimension scales by one": {
			intrinsic:      NewSize(100, 0),
			available:      NewSize(200, 200),
			explicitWidth:  Unset,
			explicitHeight: Unset,
			policy:         StretchFill,
			expectedScaleX: 2,
			expectedScaleY: 1,
			expectedSize:   NewSize(200, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := Fit(tt.intrinsic, tt.available, tt.explicitWidth, tt.explicitHeight, tt.policy)
			if !approx(r.ScaleX, tt.expectedScaleX) || !approx(r.ScaleY, tt.expectedScaleY) {
				t.Errorf("scale = (%v, %v), want (%v, %v)", r.ScaleX, r.ScaleY, tt.expectedScaleX, tt.expectedScaleY)
			}
			if !approxSize(r.Size, tt.expectedSize) {
				t.Errorf("Size = %+v, want %+v", r.Size, tt.expectedSize)
			}
			if !r.Size.IsFinite() {
				t.Errorf("Size %+v is not finite", r.Size)
			}
		})
	}
}

func TestFit_InvalidIntrinsic(t *testing.T) {
	intrinsics := map[string]Size{
		"NaN width":     NewSize(math.NaN(), 10),
		"infinite":      NewSize(Infinite, 10),
		"negative size": NewSize(-1, 10),
	}

	for name, intrinsic := range intrinsics {
		t.Run(name, func(t *testing.T) {
			r := Fit(intrinsic, NewSize(100, 100), Unset, Unset, StretchFill)
			if r.Valid {
				t.Error("Valid = true, want false")
			}
			if r.Size != (Size{}) {
				t.Errorf("Size = %+v, want zero", r.Size)
			}
			if r.ScaleX != 1 || r.ScaleY != 1 {
				t.Errorf("scale = (%v, %v), want (1, 1)", r.ScaleX, r.ScaleY)
			}
		})
	}
}

func TestComputeFit(t *testing.T) {
	type tc struct {
		box        Rect
		available  Size
		policy     Stretch
		opts       FitOptions
		expected   Placement
		invalidErr bool
	}

	tests := map[string]tc{
		"uniform translates by scaled origin": {
			box:       NewRect(10, 20, 100, 50),
			available: NewSize(200, 200),
			policy:    StretchUniform,
			expected: Placement{
				Size:       NewSize(200, 100),
				ScaleX:     2,
				ScaleY:     2,
				TranslateX: -20,
				TranslateY: -40,
			},
		},
		"stroke shrinks scale and offsets by half": {
			box:       NewRect(0, 0, 100, 100),
			available: NewSize(104, 104),
			policy:    StretchFill,
			opts:      FitOptions{StrokeThickness: 4},
			expected: Placement{
				Size:       NewSize(104, 104),
				ScaleX:     1,
				ScaleY:     1,
				TranslateX: 2,
				TranslateY: 2,
			},
		},
		"none keeps origin untranslated": {
			box:       NewRect(10, 20, 100, 50),
			available: NewSize(10, 10),
			policy:    StretchNone,
			expected: Placement{
				Size:   NewSize(100, 50),
				ScaleX: 1,
				ScaleY: 1,
			},
		},
		"preserve origin grows intrinsic box": {
			box:       NewRect(10, 20, 100, 50),
			available: NewSize(10, 10),
			policy:    StretchNone,
			opts:      FitOptions{StrokeThickness: 2, PreserveOrigin: true},
			expected: Placement{
				Size:   NewSize(112, 72),
				ScaleX: 1,
				ScaleY: 1,
			},
		},
		"infinite box is invalid": {
			box:        Rect{X: math.Inf(-1), Width: 10, Height: 10},
			available:  NewSize(100, 100),
			policy:     StretchUniform,
			expected:   IdentityPlacement(),
			invalidErr: true,
		},
		"NaN box is invalid": {
			box:        Rect{Width: math.NaN(), Height: 10},
			available:  NewSize(100, 100),
			policy:     StretchFill,
			expected:   IdentityPlacement(),
			invalidErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := ComputeFit(tt.box, tt.available, NewSize(Unset, Unset), tt.policy, tt.opts)
			if tt.invalidErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Fatalf("error = %v, want ErrInvalidGeometry", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !approxSize(p.Size, tt.expected.Size) {
				t.Errorf("Size = %+v, want %+v", p.Size, tt.expected.Size)
			}
			if !approx(p.ScaleX, tt.expected.ScaleX) || !approx(p.ScaleY, tt.expected.ScaleY) {
				t.Errorf("scale = (%v, %v), want (%v, %v)", p.ScaleX, p.ScaleY, tt.expected.ScaleX, tt.expected.ScaleY)
			}
			if !approx(p.TranslateX, tt.expected.TranslateX) || !approx(p.TranslateY, tt.expected.TranslateY) {
				t.Errorf("translate = (%v, %v), want (%v, %v)", p.TranslateX, p.TranslateY, tt.expected.TranslateX, tt.expected.TranslateY)
			}
		})
	}
}

func TestPlacement_ApplyMapsBoxIntoFittedRect(t *testing.T) {
	box := NewRect(10, 20, 100, 50)
	p, err := ComputeFit(box, NewSize(200, 200), NewSize(Unset, Unset), StretchUniform, FitOptions{})
	if err != nil {
		t.Fatalf("ComputeFit() error = %v", err)
	}

	topLeft := p.Apply(Point{X: box.X, Y: box.Y})
	bottomRight := p.Apply(Point{X: box.X + box.Width, Y: box.Y + box.Height})

	if !approx(topLeft.X, 0) || !approx(topLeft.Y, 0) {
		t.Errorf("top-left maps to %+v, want origin", topLeft)
	}
	if !approx(bottomRight.X, 200) || !approx(bottomRight.Y, 100) {
		t.Errorf("bottom-right maps to %+v, want (200, 100)", bottomRight)
	}
}
