package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/material"
)

var (
	testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	validRange   = core.NewInterval(0.001, math.Inf(1))
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, validRange)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, validRange)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}

			if hit.Material != testMaterial {
				t.Errorf("Expected the sphere's material to be attached to the hit")
			}
		})
	}
}

func TestSphere_Hit_NearestRootAlongRay(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		origin := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		direction := core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5).Normalize()
		radius := 0.1 + random.Float64()*2
		distance := radius + 0.5 + random.Float64()*20

		center := origin.Add(direction.Multiply(distance))
		sphere := NewSphere(center, radius, testMaterial)

		hit, isHit := sphere.Hit(core.NewRay(origin, direction), validRange)
		if !isHit {
			t.Fatalf("Expected hit for sphere at distance %f", distance)
		}

		if math.Abs(hit.T-(distance-radius)) > 1e-9 {
			t.Errorf("Expected t=%f, got t=%f", distance-radius, hit.T)
		}
		if !hit.FrontFace {
			t.Error("Expected front face hit from outside the sphere")
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
		}
		// Normal points from the center towards the hit point
		if hit.Normal.Dot(hit.Point.Subtract(center)) <= 0 {
			t.Errorf("Expected outward normal, got %v", hit.Normal)
		}
	}
}

func TestSphere_Hit_UnnormalizedDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2))

	hit, isHit := sphere.Hit(ray, validRange)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	// t is in units of the direction's length
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, validRange)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Upper bound excludes both roots
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5))
	if isHit {
		t.Errorf("Expected miss due to max bound, but got hit at t=%f", hit.T)
	}

	// Lower bound excludes both roots
	hit, isHit = sphere.Hit(ray, core.NewInterval(3.5, 1000.0))
	if isHit {
		t.Errorf("Expected miss due to min bound, but got hit at t=%f", hit.T)
	}

	// Lower bound excludes only the near root, so the far root is used
	hit, isHit = sphere.Hit(ray, core.NewInterval(1.5, 1000.0))
	if !isHit {
		t.Fatal("Expected far root to be hit")
	}
	if math.Abs(hit.T-3) > 1e-9 || hit.FrontFace {
		t.Errorf("Expected back face hit at t=3, got t=%f front=%t", hit.T, hit.FrontFace)
	}

	// A root exactly on the boundary is not strictly inside the interval
	hit, isHit = sphere.Hit(ray, core.NewInterval(1.0, 2.0))
	if isHit && hit.T == 1.0 {
		t.Error("Root on the interval boundary must be rejected")
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, validRange)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	// Outward normal points inwards, so the ray seems to hit the back face
	if hit.FrontFace {
		t.Error("Expected inverted sphere to report a back face hit")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected stored normal to oppose the ray, got %v", hit.Normal)
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sphere  *Sphere
		wantErr error
	}{
		{"valid", NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial), nil},
		{"negative radius allowed", NewSphere(core.NewVec3(0, 0, 0), -0.4, testMaterial), nil},
		{"zero radius", NewSphere(core.NewVec3(0, 0, 0), 0, testMaterial), ErrInvalidSphere},
		{"infinite radius", NewSphere(core.NewVec3(0, 0, 0), math.Inf(1), testMaterial), ErrInvalidSphere},
		{"nan center", NewSphere(core.NewVec3(math.NaN(), 0, 0), 1, testMaterial), ErrInvalidSphere},
		{"no material", NewSphere(core.NewVec3(0, 0, 0), 1, nil), ErrMissingMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sphere.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
