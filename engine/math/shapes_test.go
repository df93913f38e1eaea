package math

import (
	m "math"
	"testing"
)

const tolerance float32 = 1e-5

func TestGenerateRegularPolygon_VertexCount(t *testing.T) {
	for _, sides := range []int{3, 5, 8, 100} {
		got := GenerateRegularPolygon(sides, 0.3, NewVec2(0.6, -0.5))
		if len(got) != sides+2 {
			t.Errorf("sides=%d: len = %d, want %d", sides, len(got), sides+2)
		}
	}
}

func TestGenerateRegularPolygon_Geometry(t *testing.T) {
	centre := NewVec2(-0.6, 0.5)
	radius := float32(0.3)
	got := GenerateRegularPolygon(8, radius, centre)

	if !got[0].Compare(centre.ToVec3(0), 0) {
		t.Errorf("first vertex = %v, want centre %v", got[0], centre)
	}
	for i, v := range got[1:] {
		if d := v.ToVec2().Distance(centre); kabs(d-radius) > tolerance {
			t.Errorf("perimeter vertex %d at distance %v, want %v", i, d, radius)
		}
		if v.Z != 0 {
			t.Errorf("perimeter vertex %d has z = %v", i, v.Z)
		}
	}
	if !got[1].Compare(got[len(got)-1], tolerance) {
		t.Errorf("loop not closed: first %v last %v", got[1], got[len(got)-1])
	}
	if !got[1].Compare(NewVec3(centre.X+radius, centre.Y, 0), tolerance) {
		t.Errorf("first perimeter vertex = %v, want angle 0", got[1])
	}
}

func TestGenerateArc_FullCircleMatchesPolygon(t *testing.T) {
	centre := NewVec2(0.1, 0.2)
	for _, n := range []int{4, 16, 50} {
		arc := GenerateArc(0, K_PI_2, 0.4, n, centre)
		poly := GenerateRegularPolygon(n, 0.4, centre)
		if len(arc) != len(poly) {
			t.Fatalf("n=%d: len(arc) = %d, len(poly) = %d", n, len(arc), len(poly))
		}
		for i := range arc {
			if !arc[i].Compare(poly[i], tolerance) {
				t.Errorf("n=%d vertex %d: arc %v != polygon %v", n, i, arc[i], poly[i])
			}
		}
	}
}

func TestGenerateArc_Wedge(t *testing.T) {
	centre := NewVec2(-0.6, -0.5)
	start, end := K_QUARTER_PI, 7*K_QUARTER_PI
	got := GenerateArc(start, end, 0.4, 0, centre)

	if len(got) != DefaultArcSegments+2 {
		t.Fatalf("len = %d, want %d", len(got), DefaultArcSegments+2)
	}
	first := got[1].ToVec2().Sub(centre)
	last := got[len(got)-1].ToVec2().Sub(centre)
	if a := float32(m.Atan2(float64(first.Y), float64(first.X))); kabs(a-start) > tolerance {
		t.Errorf("first angle = %v, want %v", a, start)
	}
	wantLast := end - K_PI_2
	if a := float32(m.Atan2(float64(last.Y), float64(last.X))); kabs(a-wantLast) > tolerance {
		t.Errorf("last angle = %v, want %v", a, wantLast)
	}
	for i, v := range got[1:] {
		if d := v.ToVec2().Distance(centre); kabs(d-0.4) > tolerance {
			t.Errorf("vertex %d at distance %v", i, d)
		}
	}
}

func TestGenerateStar_AlternatingRadii(t *testing.T) {
	centre := NewVec2(0.6, 0.6)
	inner, outer := float32(0.2), float32(0.4)
	got := GenerateStar(5, inner, outer, centre)

	if len(got) != 2*5+2 {
		t.Fatalf("len = %d, want %d", len(got), 12)
	}
	if !got[0].Compare(centre.ToVec3(0), 0) {
		t.Errorf("first vertex = %v, want centre", got[0])
	}
	for i, v := range got[1:] {
		want := outer
		if i%2 == 1 {
			want = inner
		}
		if d := v.ToVec2().Distance(centre); kabs(d-want) > tolerance {
			t.Errorf("perimeter %d: radius %v, want %v", i, d, want)
		}
	}
	if !got[1].Compare(got[len(got)-1], tolerance) {
		t.Error("star outline is not closed")
	}
}

func TestGenerateSpiral(t *testing.T) {
	centre := NewVec2(0, 0)
	got := GenerateSpiral(5, 100, 0.6, centre)

	if len(got) != 501 {
		t.Fatalf("len = %d, want 501", len(got))
	}
	if !got[0].Compare(centre.ToVec3(0), tolerance) {
		t.Errorf("spiral starts at %v, want centre", got[0])
	}
	if !got[500].Compare(NewVec3(0.6, 0, 0), tolerance) {
		t.Errorf("spiral ends at %v, want (0.6, 0)", got[500])
	}
	prev := float32(-1)
	for i, v := range got {
		d := v.ToVec2().Distance(centre)
		if d+tolerance < prev {
			t.Fatalf("radius shrinks at vertex %d: %v < %v", i, d, prev)
		}
		prev = d
	}
}

func TestGenerateRectangleAndTriangle(t *testing.T) {
	rect := GenerateRectangle(NewVec2(-0.5, -0.5), NewVec2(0.5, 0))
	if len(rect) != 6 {
		t.Fatalf("rectangle len = %d, want 6", len(rect))
	}
	if !rect[2].Compare(NewVec3(0.5, 0, 0), 0) || !rect[5].Compare(NewVec3(-0.5, 0, 0), 0) {
		t.Errorf("unexpected rectangle corners %v", rect)
	}

	tri := GenerateTriangle(NewVec2(-0.6, 0), NewVec2(0.6, 0), NewVec2(0, 0.5))
	if len(tri) != 3 || tri[2].Y != 0.5 {
		t.Errorf("triangle = %v", tri)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([]Vec3{{1, 2, 0}, {3, 4, 0}})
	want := []float32{1, 2, 0, 3, 4, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Flatten()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDegenerateCounts(t *testing.T) {
	c := NewVec2(0.25, 0.25)
	if got := GenerateRegularPolygon(0, 1, c); len(got) != 1 {
		t.Errorf("polygon with 0 sides len = %d, want 1", len(got))
	}
	if got := GenerateStar(0, 1, 2, c); len(got) != 1 {
		t.Errorf("star with 0 points len = %d, want 1", len(got))
	}
	if got := GenerateSpiral(0, 10, 1, c); len(got) != 1 {
		t.Errorf("spiral with 0 turns len = %d, want 1", len(got))
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp on ints returned unexpected values")
	}
	c := ClampColour(NewVec4(1.5, -0.2, 0.5, 1))
	if c != NewVec4(1, 0, 0.5, 1) {
		t.Errorf("ClampColour() = %v", c)
	}
}

func TestNewVec4FromSlice(t *testing.T) {
	if v := NewVec4FromSlice([]float32{0.1, 0.2, 0.3}); v != NewVec4(0.1, 0.2, 0.3, 1) {
		t.Errorf("NewVec4FromSlice(3) = %v", v)
	}
	if v := NewVec4FromSlice(nil); v != NewVec4(0, 0, 0, 1) {
		t.Errorf("NewVec4FromSlice(nil) = %v", v)
	}
}
