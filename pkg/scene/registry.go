package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

// Builder creates a built-in scene. The sampler drives any randomized placement.
type Builder func(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) *Scene

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name passed to Load
	DisplayName string // Human readable name
	Description string // Optional description
	Group       string // Grouping category
	Type        string // "builtin" or "file"
	FilePath    string // Path to the scene file (file type only)
}

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

type builtinScene struct {
	info  SceneInfo
	build Builder
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:  SceneInfo{Description: "Random small spheres around three large ones, with defocus blur"},
		build: NewDefaultScene,
	},
	"materials": {
		info:  SceneInfo{Description: "Diffuse, hollow glass and metal spheres side by side"},
		build: NewMaterialsScene,
	},
	"simple": {
		info:  SceneInfo{Description: "A single diffuse sphere under the sky"},
		build: NewSimpleScene,
	},
	"sphere-grid": {
		info:  SceneInfo{Description: "10x10 grid of rainbow-colored metallic spheres"},
		build: NewSphereGridScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by ID
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, entry := range builtinScenes {
		info := entry.info
		info.ID = id
		info.DisplayName = titleCase(id)
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ListFileScenes scans dir for JSON scene files and reads their metadata.
// A missing directory yields an empty list.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		sceneInfo, err := ParseFileMetadata(filePath)
		if err != nil {
			logger.Warningf("Skipping %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseFileMetadata reads the descriptive fields of a JSON scene file, falling
// back to values derived from the file name
func ParseFileMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          filePath,
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return sceneInfo, fmt.Errorf("invalid scene file: %w", err)
	}

	if header.Name != "" {
		sceneInfo.DisplayName = header.Name
	}
	if header.Group != "" {
		sceneInfo.Group = header.Group
	}
	sceneInfo.Description = header.Description

	return sceneInfo, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	fileScenes, err := ListFileScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(ListBuiltinScenes(), fileScenes...), nil
}

// Load resolves a built-in scene name or a path to a .json scene file
func Load(nameOrPath string, sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadFile(nameOrPath, cameraOverrides...)
	}

	entry, ok := builtinScenes[nameOrPath]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, nameOrPath)
	}

	s := entry.build(sampler, cameraOverrides...)
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger.Infof("Built scene %q with %d shapes", s.Name, s.GetPrimitiveCount())
	return s, nil
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
