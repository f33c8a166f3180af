package sensor

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-distant-sensor/pkg/core"
	"github.com/df07/go-distant-sensor/pkg/geometry"
	"github.com/df07/go-distant-sensor/pkg/scene"
)

// testLogger captures log output for assertions
type testLogger struct {
	lines []string
}

func (l *testLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *testLogger) contains(substr string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestNewDistant_StrategyResolution(t *testing.T) {
	shape := geometry.NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))

	tests := []struct {
		name           string
		opts           Options
		expectedTarget TargetMode
		expectedOrigin OriginMode
	}{
		{
			name:           "defaults",
			opts:           Options{},
			expectedTarget: TargetBoundingDisk,
			expectedOrigin: OriginBoundingSphere,
		},
		{
			name:           "point target",
			opts:           Options{Target: TargetPoint(core.NewVec3(0, 0, 0))},
			expectedTarget: TargetFixedPoint,
			expectedOrigin: OriginBoundingSphere,
		},
		{
			name:           "shape target",
			opts:           Options{Target: TargetShape(shape)},
			expectedTarget: TargetShapeSurface,
			expectedOrigin: OriginBoundingSphere,
		},
		{
			name:           "shape origin",
			opts:           Options{Origin: shape},
			expectedTarget: TargetBoundingDisk,
			expectedOrigin: OriginProjectOntoShape,
		},
		{
			name:           "shape target and shape origin",
			opts:           Options{Target: TargetShape(shape), Origin: shape},
			expectedTarget: TargetShapeSurface,
			expectedOrigin: OriginProjectOntoShape,
		},
		{
			name:           "point target and shape origin",
			opts:           Options{Target: TargetPoint(core.NewVec3(1, 2, 3)), Origin: shape},
			expectedTarget: TargetFixedPoint,
			expectedOrigin: OriginProjectOntoShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = &testLogger{}
			dist, err := NewDistant(tt.opts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if dist.TargetMode() != tt.expectedTarget {
				t.Errorf("Expected target mode %v, got %v", tt.expectedTarget, dist.TargetMode())
			}
			if dist.OriginMode() != tt.expectedOrigin {
				t.Errorf("Expected origin mode %v, got %v", tt.expectedOrigin, dist.OriginMode())
			}
		})
	}
}

func TestNewDistant_ConfigErrors(t *testing.T) {
	direction := core.NewVec3(0, 0, 1)
	zero := core.NewVec3(0, 0, 0)

	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "direction and to_world are exclusive",
			opts: Options{
				Direction: &direction,
				ToWorld:   core.NewStaticTransform(core.IdentityTransform()),
			},
		},
		{
			name: "zero direction",
			opts: Options{Direction: &zero},
		},
		{
			name: "nil target shape",
			opts: Options{Target: TargetShape(nil)},
		},
		{
			name: "film too wide",
			opts: Options{Film: &Film{Width: 2, Height: 1, FilterRadius: 0.5}},
		},
		{
			name: "film too tall",
			opts: Options{Film: &Film{Width: 1, Height: 2, FilterRadius: 0.5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = &testLogger{}
			dist, err := NewDistant(tt.opts)
			if err == nil {
				t.Fatal("Expected construction to fail")
			}
			var configErr *ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("Expected *ConfigError, got %T: %v", err, err)
			}
			if dist != nil {
				t.Error("No sensor must be returned alongside an error")
			}
		})
	}
}

func TestNewDistant_FilterRadiusWarning(t *testing.T) {
	logger := &testLogger{}
	_, err := NewDistant(Options{
		Film:   &Film{Width: 1, Height: 1, FilterRadius: 1.5},
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("Oversized filter radius must not be fatal: %v", err)
	}
	if !logger.contains("Warning") {
		t.Error("Expected a logged warning for the filter radius")
	}

	// The default box filter radius must not warn
	logger = &testLogger{}
	if _, err := NewDistant(Options{Logger: logger}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.contains("Warning") {
		t.Error("Default filter radius must not warn")
	}
}

func TestDistant_Bind(t *testing.T) {
	dist, err := NewDistant(Options{Logger: &testLogger{}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Binding an empty scene floors the radius at the epsilon
	dist.Bind(scene.NewScene())
	if got := dist.BoundingSphere().Radius; got != core.RayEpsilon {
		t.Errorf("Expected radius %v for empty scene, got %v", core.RayEpsilon, got)
	}

	// Rebinding against a different scene recomputes the sphere
	dist.Bind(scene.NewScene(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)))
	first := dist.BoundingSphere()
	if first.Radius <= 1 {
		t.Errorf("Expected radius above 1, got %v", first.Radius)
	}

	dist.Bind(scene.NewScene(geometry.NewSphere(core.NewVec3(5, 0, 0), 3.0)))
	second := dist.BoundingSphere()
	if second.Center.Subtract(core.NewVec3(5, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected recentered sphere, got center %v", second.Center)
	}
	if second.Radius <= first.Radius {
		t.Errorf("Expected larger radius after rebinding, got %v", second.Radius)
	}
}

func TestDistant_String(t *testing.T) {
	dist, err := NewDistant(Options{
		Target: TargetPoint(core.NewVec3(1, 2, 3)),
		Logger: &testLogger{},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s := dist.String()
	for _, want := range []string{"DistantSensor", "fixed_point", "bounding_sphere", "1x1"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in description:\n%s", want, s)
		}
	}
}
