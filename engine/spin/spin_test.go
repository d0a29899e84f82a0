package spin

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDragAcceleration(t *testing.T) {
	tests := []struct {
		name   string
		deltaX float32
		sign   float32
	}{
		{"drag right slows", 3, -1},
		{"drag left speeds", -3, 1},
		{"still holds", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			prev := m.Speed()
			for i := 0; i < 10; i++ {
				got := m.Step(true, tt.deltaX)
				want := prev + tt.sign*DefaultAccel
				if !mgl32.FloatEqualThreshold(got, want, 1e-6) {
					t.Fatalf("frame %d: speed = %v, want %v", i, got, want)
				}
				prev = got
			}
		})
	}
}

func TestDecayNeverOvershoots(t *testing.T) {
	for _, start := range []float32{0.0012, -0.0012, 0.0005, -0.0003, 0.2} {
		m := NewModel()
		m.SetSpeed(start)
		for i := 0; i < 1000; i++ {
			prev := m.Speed()
			got := m.Step(false, 0)

			if prev > 0 && got < 0 || prev < 0 && got > 0 {
				t.Fatalf("start %v: sign flipped %v -> %v", start, prev, got)
			}
			abs := func(v float32) float32 {
				if v < 0 {
					return -v
				}
				return v
			}
			want := max(0, abs(prev)-DefaultDecel)
			if !mgl32.FloatEqualThreshold(abs(got), want, 1e-6) {
				t.Fatalf("start %v: |speed| = %v, want %v", start, abs(got), want)
			}
		}
		if m.Speed() != 0 {
			t.Fatalf("start %v: speed did not settle at zero: %v", start, m.Speed())
		}
	}
}

func TestDecayIgnoresDelta(t *testing.T) {
	m := NewModel()
	m.SetSpeed(0.1)
	got := m.Step(false, 50)
	if !mgl32.FloatEqualThreshold(got, 0.1-DefaultDecel, 1e-6) {
		t.Fatalf("released step = %v", got)
	}
}

func TestUnboundedByDefault(t *testing.T) {
	m := NewModel()
	for i := 0; i < 1000; i++ {
		m.Step(true, -1)
	}
	if !mgl32.FloatEqualThreshold(m.Speed(), 1000*DefaultAccel, 1e-3) {
		t.Fatalf("speed = %v, want %v", m.Speed(), 1000*DefaultAccel)
	}
}

func TestWithMaxSpeed(t *testing.T) {
	m := NewModel(WithMaxSpeed(0.02))
	for i := 0; i < 10; i++ {
		m.Step(true, 1)
	}
	if m.Speed() != -0.02 {
		t.Fatalf("speed = %v, want -0.02", m.Speed())
	}
	m.SetSpeed(5)
	if m.Speed() != 0.02 {
		t.Fatalf("SetSpeed not bounded: %v", m.Speed())
	}
}

func TestOptions(t *testing.T) {
	m := NewModel(WithAccel(0.01), WithDecel(0.001), WithAccel(-1))
	if m.Accel() != 0.01 || m.Decel() != 0.001 || m.MaxSpeed() != 0 {
		t.Fatalf("options not applied: accel=%v decel=%v max=%v", m.Accel(), m.Decel(), m.MaxSpeed())
	}
	m.Step(true, -1)
	m.Reset()
	if m.Speed() != 0 {
		t.Fatalf("Reset left speed %v", m.Speed())
	}
}
