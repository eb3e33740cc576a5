package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/geometry"
	"github.com/thomas-lane/go-raytracer/pkg/material"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

// vector is a JSON [x, y, z] triple
type vector [3]float64

func (v vector) vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// sceneFile is the on-disk layout of a JSON scene. Omitted camera and sampling
// fields keep their defaults.
type sceneFile struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Group       string                   `json:"group"`
	Camera      cameraBlock              `json:"camera"`
	Sampling    samplingBlock            `json:"sampling"`
	Background  *backgroundBlock         `json:"background"`
	Materials   map[string]materialBlock `json:"materials"`
	Spheres     []sphereBlock            `json:"spheres"`
}

type cameraBlock struct {
	AspectRatio   *float64 `json:"aspect_ratio"`
	Width         *int     `json:"width"`
	VFov          *float64 `json:"vfov"`
	LookFrom      *vector  `json:"look_from"`
	LookAt        *vector  `json:"look_at"`
	Up            *vector  `json:"up"`
	DefocusAngle  *float64 `json:"defocus_angle"`
	FocusDistance *float64 `json:"focus_distance"`
}

type samplingBlock struct {
	SamplesPerPixel *int `json:"samples_per_pixel"`
	MaxDepth        *int `json:"max_depth"`
}

type backgroundBlock struct {
	Top    vector `json:"top"`
	Bottom vector `json:"bottom"`
}

type materialBlock struct {
	Type            string  `json:"type"`
	Albedo          vector  `json:"albedo"`
	Fuzz            float64 `json:"fuzz"`
	RefractiveIndex float64 `json:"refractive_index"`
}

type sphereBlock struct {
	Center   vector  `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// LoadFile reads a JSON scene file
func LoadFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := Decode(file, name, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return s, nil
}

// Decode builds a scene from JSON. fallbackName is used when the document has no name.
func Decode(r io.Reader, fallbackName string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var doc sceneFile
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	name := doc.Name
	if name == "" {
		name = fallbackName
	}

	s := newScene(name, convertCamera(doc.Camera), convertSampling(doc.Sampling), cameraOverrides...)
	if doc.Background != nil {
		s.Background.Top = doc.Background.Top.vec3()
		s.Background.Bottom = doc.Background.Bottom.vec3()
	}

	materials, err := convertMaterials(doc.Materials)
	if err != nil {
		return nil, err
	}

	for i, sphere := range doc.Spheres {
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q", i, ErrUnknownMaterial, sphere.Material)
		}
		s.Add(geometry.NewSphere(sphere.Center.vec3(), sphere.Radius, mat))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger.Infof("Loaded scene %q with %d materials and %d shapes", s.Name, len(materials), s.GetPrimitiveCount())
	return s, nil
}

// convertCamera applies the fields present in the file on top of the default camera
func convertCamera(block cameraBlock) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	if block.AspectRatio != nil {
		config.AspectRatio = *block.AspectRatio
	}
	if block.Width != nil {
		config.Width = *block.Width
	}
	if block.VFov != nil {
		config.VFov = *block.VFov
	}
	if block.LookFrom != nil {
		config.LookFrom = block.LookFrom.vec3()
	}
	if block.LookAt != nil {
		config.LookAt = block.LookAt.vec3()
	}
	if block.Up != nil {
		config.Up = block.Up.vec3()
	}
	if block.DefocusAngle != nil {
		config.DefocusAngle = *block.DefocusAngle
	}
	if block.FocusDistance != nil {
		config.FocusDistance = *block.FocusDistance
	}
	return config
}

func convertSampling(block samplingBlock) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	if block.SamplesPerPixel != nil {
		config.SamplesPerPixel = *block.SamplesPerPixel
	}
	if block.MaxDepth != nil {
		config.MaxDepth = *block.MaxDepth
	}
	return config
}

// convertMaterials builds the named material table, visiting names in sorted
// order so errors are reported deterministically
func convertMaterials(blocks map[string]materialBlock) (map[string]material.Material, error) {
	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]material.Material, len(blocks))
	for _, name := range names {
		mat, err := convertMaterial(blocks[name])
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}
	return materials, nil
}

func convertMaterial(block materialBlock) (material.Material, error) {
	switch block.Type {
	case "lambertian":
		return material.NewLambertian(block.Albedo.vec3()), nil
	case "metal":
		return material.NewMetal(block.Albedo.vec3(), block.Fuzz), nil
	case "dielectric":
		if block.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("%w: refractive index %g must be positive", ErrInvalidScene, block.RefractiveIndex)
		}
		return material.NewDielectric(block.RefractiveIndex), nil
	}
	return nil, fmt.Errorf("%w: unsupported material type %q", ErrInvalidScene, block.Type)
}
