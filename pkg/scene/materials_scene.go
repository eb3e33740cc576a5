package scene

import (
	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/geometry"
	"github.com/thomas-lane/go-raytracer/pkg/material"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

// NewMaterialsScene creates three spheres side by side, one per material, on a large ground sphere.
// The left sphere is a hollow glass bubble: a negative radius flips the inner surface normals.
func NewMaterialsScene(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		AspectRatio:   16.0 / 9.0,
		Width:         400,
		VFov:          20,
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	s := newScene("materials", defaultCameraConfig, samplingConfig, cameraOverrides...)

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialLeft),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	return s
}

// NewSimpleScene creates a single diffuse sphere in front of a pinhole camera
func NewSimpleScene(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("simple", renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), cameraOverrides...)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	return s
}
