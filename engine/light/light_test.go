package light

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultLightAimsAtOrigin(t *testing.T) {
	l := NewLight()
	want := mgl32.Vec3{0, -0.5, -1}.Normalize()
	got := mgl32.Vec3(l.Direction())
	if got.Sub(want).Len() > 1e-6 {
		t.Fatalf("direction = %v, want %v", got, want)
	}
	if l.Intensity() != DefaultIntensity || l.Ambient() != DefaultAmbient || !l.Enabled() {
		t.Fatalf("defaults: intensity %v ambient %v enabled %v", l.Intensity(), l.Ambient(), l.Enabled())
	}
}

func TestSetTargetReaimsLight(t *testing.T) {
	l := NewLight(WithPosition(0, 0, 0))
	l.SetTarget(3, 0, 0)
	if d := l.Direction(); d != [3]float32{1, 0, 0} {
		t.Fatalf("direction = %v, want +X", d)
	}
	l.SetTarget(0, 0, 0)
	if d := l.Direction(); d != [3]float32{} {
		t.Fatalf("coincident target gave %v, want zero vector", d)
	}
}

func TestSettersIgnoreOutOfRange(t *testing.T) {
	l := NewLight(WithIntensity(-1), WithAmbient(2))
	if l.Intensity() != DefaultIntensity || l.Ambient() != DefaultAmbient {
		t.Fatalf("options accepted invalid values: %v %v", l.Intensity(), l.Ambient())
	}
	l.SetIntensity(-0.1)
	l.SetAmbient(-0.1)
	if l.Intensity() != DefaultIntensity || l.Ambient() != DefaultAmbient {
		t.Fatalf("setters accepted invalid values: %v %v", l.Intensity(), l.Ambient())
	}
	l.SetIntensity(0.8)
	l.SetAmbient(0.1)
	l.SetColor(1, 0.5, 0)
	if l.Intensity() != 0.8 || l.Ambient() != 0.1 || l.Color() != [3]float32{1, 0.5, 0} {
		t.Fatalf("setters ignored valid values")
	}
}

func TestUniformMarshal(t *testing.T) {
	l := NewLight(WithPosition(0, 1, 0), WithColor(1, 0.5, 0.25), WithIntensity(0.75), WithAmbient(0.2))
	u := l.Uniform()
	if u.Size() != 32 {
		t.Fatalf("Size() = %d, want 32", u.Size())
	}
	buf := u.Marshal()
	read := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	if read(4) != -1 || read(12) != 0.75 || read(20) != 0.5 || read(28) != 0.2 {
		t.Fatalf("marshal layout: dirY %v intensity %v colorG %v ambient %v", read(4), read(12), read(20), read(28))
	}

	l.SetEnabled(false)
	if u := l.Uniform(); u.Intensity != 0 || u.Ambient != 0.2 {
		t.Fatalf("disabled uniform = %+v", u)
	}
	if !strings.Contains(GPULightSource, "struct Light") {
		t.Fatal("embedded WGSL missing Light struct")
	}
}
