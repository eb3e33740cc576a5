package scene

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/geometry"
	"github.com/thomas-lane/go-raytracer/pkg/material"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

const minimalScene = `{
  "camera": {"width": 32, "vfov": 60, "look_from": [0, 0, 1]},
  "sampling": {"samples_per_pixel": 4},
  "materials": {
    "matte": {"type": "lambertian", "albedo": [0.5, 0.5, 0.5]},
    "mirror": {"type": "metal", "albedo": [0.9, 0.9, 0.9], "fuzz": 3},
    "glass": {"type": "dielectric", "refractive_index": 1.5}
  },
  "spheres": [
    {"center": [0, 0, -1], "radius": 0.5, "material": "matte"},
    {"center": [1, 0, -1], "radius": 0.5, "material": "mirror"},
    {"center": [-1, 0, -1], "radius": -0.4, "material": "glass"}
  ]
}`

func TestDecode_MinimalScene(t *testing.T) {
	s, err := Decode(strings.NewReader(minimalScene), "minimal")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if s.Name != "minimal" {
		t.Errorf("Expected fallback name, got %q", s.Name)
	}
	if s.GetPrimitiveCount() != 3 {
		t.Fatalf("Expected 3 spheres, got %d", s.GetPrimitiveCount())
	}

	// Present fields override, absent ones keep the defaults
	defaults := renderer.DefaultCameraConfig()
	if s.CameraConfig.Width != 32 || s.CameraConfig.VFov != 60 || s.CameraConfig.LookFrom != core.NewVec3(0, 0, 1) {
		t.Errorf("Camera fields not applied: %+v", s.CameraConfig)
	}
	if s.CameraConfig.LookAt != defaults.LookAt || s.CameraConfig.AspectRatio != defaults.AspectRatio {
		t.Errorf("Absent camera fields should keep defaults: %+v", s.CameraConfig)
	}
	if s.SamplingConfig.SamplesPerPixel != 4 || s.SamplingConfig.MaxDepth != renderer.DefaultSamplingConfig().MaxDepth {
		t.Errorf("Unexpected sampling config %+v", s.SamplingConfig)
	}

	mirror := s.World.Shapes[1].(*geometry.Sphere).Material.(*material.Metal)
	if mirror.Fuzzness != 1 {
		t.Errorf("Expected fuzz clamped to 1, got %f", mirror.Fuzzness)
	}
	if bubble := s.World.Shapes[2].(*geometry.Sphere); bubble.Radius != -0.4 {
		t.Errorf("Expected negative radius to be kept, got %f", bubble.Radius)
	}
}

func TestDecode_Background(t *testing.T) {
	doc := `{
  "background": {"top": [0, 0, 0], "bottom": [1, 0, 0]},
  "materials": {"m": {"type": "lambertian", "albedo": [1, 1, 1]}},
  "spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "m"}]
}`
	s, err := Decode(strings.NewReader(doc), "bg")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if s.Background.Top != core.NewVec3(0, 0, 0) || s.Background.Bottom != core.NewVec3(1, 0, 0) {
		t.Errorf("Background not applied: %+v", s.Background)
	}
}

func TestDecode_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		expected error
	}{
		{
			name:     "unknown material",
			doc:      `{"materials": {}, "spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "chrome"}]}`,
			expected: ErrUnknownMaterial,
		},
		{
			name:     "unsupported material type",
			doc:      `{"materials": {"x": {"type": "emissive"}}, "spheres": []}`,
			expected: ErrInvalidScene,
		},
		{
			name:     "dielectric without index",
			doc:      `{"materials": {"g": {"type": "dielectric"}}, "spheres": []}`,
			expected: ErrInvalidScene,
		},
		{
			name:     "zero radius",
			doc:      `{"materials": {"m": {"type": "lambertian", "albedo": [1, 1, 1]}}, "spheres": [{"center": [0, 0, -1], "radius": 0, "material": "m"}]}`,
			expected: geometry.ErrInvalidSphere,
		},
		{
			name:     "no spheres",
			doc:      `{"materials": {}, "spheres": []}`,
			expected: geometry.ErrEmptyScene,
		},
		{
			name:     "bad camera",
			doc:      `{"camera": {"width": 0}, "materials": {"m": {"type": "lambertian", "albedo": [1, 1, 1]}}, "spheres": [{"center": [0, 0, -1], "radius": 1, "material": "m"}]}`,
			expected: renderer.ErrInvalidCamera,
		},
		{
			name:     "unknown field",
			doc:      `{"lights": []}`,
			expected: ErrInvalidScene,
		},
		{
			name:     "malformed JSON",
			doc:      `{"spheres": [`,
			expected: ErrInvalidScene,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc), "broken")
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestLoad_JSONPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.json")
	if err := os.WriteFile(path, []byte(minimalScene), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	s, err := Load(path, core.NewSeededSampler(1), renderer.CameraConfig{Width: 16})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != "study" {
		t.Errorf("Expected name from file name, got %q", s.Name)
	}
	if s.CameraConfig.Width != 16 || s.CameraConfig.VFov != 60 {
		t.Errorf("Expected command line override on top of file camera, got %+v", s.CameraConfig)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := LoadFile(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadFile_BundledScenes(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(thisFile), "..", "..", "scenes")

	scenes, err := ListFileScenes(dir)
	if err != nil {
		t.Fatalf("ListFileScenes failed: %v", err)
	}
	for _, info := range scenes {
		t.Run(info.DisplayName, func(t *testing.T) {
			if _, err := LoadFile(info.FilePath); err != nil {
				t.Errorf("Bundled scene %s does not load: %v", info.FilePath, err)
			}
		})
	}
}
