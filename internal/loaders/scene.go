// Package loaders implements the scene-file collaborator: a JSON
// document is decoded into fully-resolved geometry and
// material objects and assembled into a scene.Scene. Parsing itself is
// explicitly out of the core's scope; this package is the
// thin collaborator the core depends on only through its output.
package loaders

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/material"
	"github.com/nordlicht/spectra/internal/renderer"
	"github.com/nordlicht/spectra/internal/scene"
)

// sceneFile mirrors the JSON scene-file document shape.
type sceneFile struct {
	Time0 float64 `json:"time_0"`
	Time1 float64 `json:"time_1"`
	BackgroundColor json.RawMessage `json:"background_color"`
	Camera cameraFile `json:"camera"`
	Materials []materialFile `json:"materials"`
	Objects []objectFile `json:"objects"`
}

type cameraFile struct {
	LookFrom [3]float64 `json:"look_from"`
	LookAt [3]float64 `json:"look_at"`
	Up [3]float64 `json:"up"`
	VerticalFOV float64 `json:"vertical_fov"`
	Aperture float64 `json:"aperture"`
	FocusDistance float64 `json:"focus_distance"`
}

type materialFile struct {
	Name string `json:"name"`
	materialDef
}

type materialDef struct {
	Type string `json:"type"`
	Albedo [3]float64 `json:"albedo"`
	AlbedoTexture *textureFile `json:"albedo_texture"`
	Fuzz float64 `json:"fuzz"`
	RefractiveIndex float64 `json:"refractive_index"`
	CauchyA float64 `json:"cauchy_a"`
	CauchyB float64 `json:"cauchy_b"`
	Emission [3]float64 `json:"emission"`
	HalfAngle float64 `json:"half_angle"`
	Metallic float64 `json:"metallic"`
	Roughness float64 `json:"roughness"`
	Base string `json:"base"`
	FilmIOR float64 `json:"film_ior"`
	ThicknessNM float64 `json:"thickness_nm"`
}

// textureFile is the JSON shape of a material's albedo_texture field,
// an alternative to the flat "albedo" triple for checker and
// image-backed textures.
type textureFile struct {
	Type string `json:"type"` // "checker" | "image"
	Scale float64 `json:"scale"`
	Even [3]float64 `json:"even"`
	Odd [3]float64 `json:"odd"`
	Path string `json:"path"`
	MaxDim int `json:"max_dim"`
}

type objectFile struct {
	Type string `json:"type"`
	Material string `json:"material"`
	Priority bool `json:"priority"`
	Center [3]float64 `json:"center"`
	Center1 [3]float64 `json:"center1"`
	Time0 float64 `json:"time0"`
	Time1 float64 `json:"time1"`
	Radius float64 `json:"radius"`
	Q [3]float64 `json:"q"`
	U [3]float64 `json:"u"`
	V [3]float64 `json:"v"`
	A [3]float64 `json:"a"`
	B [3]float64 `json:"b"`
	V0 [3]float64 `json:"v0"`
	V1 [3]float64 `json:"v1"`
	V2 [3]float64 `json:"v2"`
	Density float64 `json:"density"`
	Boundary *objectFile `json:"boundary"`
	Object *objectFile `json:"object"`
	Angle float64 `json:"angle"`
	Offset [3]float64 `json:"offset"`
}

// Load reads and resolves a scene-file at path into a render-ready
// scene.Scene, width/height aside (those come from the CLI's
// RenderConfig, not the scene file). buildKind selects the BVH
// construction algorithm used for both the root and MIS-priority
// trees.
func Load(path string, aspectRatio float64, buildKind geometry.BuildKind) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: failed to read scene file %q: %w", path, err)
	}

	var doc sceneFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loaders: failed to parse scene file %q: %w", path, err)
	}

	background, err := parseColor(doc.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("loaders: invalid background_color in %q: %w", path, err)
	}

	materials, err := buildMaterials(doc.Materials)
	if err != nil {
		return nil, fmt.Errorf("loaders: %q: %w", path, err)
	}

	var primitives, priority []geometry.Primitive
	for i, obj := range doc.Objects {
		p, err := buildObject(obj, materials)
		if err != nil {
			return nil, fmt.Errorf("loaders: %q: object %d: %w", path, i, err)
		}
		primitives = append(primitives, p)
		if obj.Priority {
			priority = append(priority, p)
		}
	}

	if len(primitives) == 0 {
		return nil, fmt.Errorf("loaders: %q: scene must contain at least one object", path)
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom: vec3From(doc.Camera.LookFrom),
		LookAt: vec3From(doc.Camera.LookAt),
		Up: vec3From(doc.Camera.Up),
		VerticalFOV: doc.Camera.VerticalFOV,
		AspectRatio: aspectRatio,
		Aperture: doc.Camera.Aperture,
		FocusDistance: doc.Camera.FocusDistance,
	})

	return scene.Build(primitives, priority, camera, background, buildKind, doc.Time0, doc.Time1)
}

func vec3From(a [3]float64) core.Vec3 { return core.NewVec3(a[0], a[1], a[2]) }

// buildMaterials resolves the materials array in document order,
// feeding each already-built material back in so a later "thin_film"
// entry can reference an earlier entry by name as its base: a
// thin_film's base must therefore be listed before it in the array.
func buildMaterials(defs []materialFile) (map[string]material.Material, error) {
	result := make(map[string]material.Material, len(defs))
	for _, def := range defs {
		m, err := buildMaterial(def.materialDef, result)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", def.Name, err)
		}
		result[def.Name] = m
	}
	return result, nil
}

func buildMaterial(def materialDef, materials map[string]material.Material) (material.Material, error) {
	switch def.Type {
	case "lambertian":
		tex, err := albedoTexture(def)
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(tex), nil
	case "metal":
		return material.NewMetal(vec3From(def.Albedo), def.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(def.RefractiveIndex), nil
	case "dispersive":
		return material.NewDispersive(def.CauchyA, def.CauchyB), nil
	case "diffuse_light":
		return material.NewDiffuseLight(vec3From(def.Emission)), nil
	case "cone_light":
		return material.NewConeLight(vec3From(def.Emission), def.HalfAngle*math.Pi/180), nil
	case "gltf":
		tex, err := albedoTexture(def)
		if err != nil {
			return nil, err
		}
		return material.NewGltfMaterial(tex, def.Metallic, def.Roughness), nil
	case "isotropic":
		tex, err := albedoTexture(def)
		if err != nil {
			return nil, err
		}
		return material.NewIsotropic(tex), nil
	case "thin_film":
		base, err := lookupMaterial(def.Base, materials)
		if err != nil {
			return nil, fmt.Errorf("thin_film base: %w", err)
		}
		return material.NewThinFilm(base, def.FilmIOR, def.ThicknessNM), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", def.Type)
	}
}

// albedoTexture resolves a material's albedo, preferring the
// structured albedo_texture (checker/image) over the flat albedo
// triple when both are absent it falls back to the zero color.
func albedoTexture(def materialDef) (material.Texture, error) {
	if def.AlbedoTexture != nil {
		return buildTexture(def.AlbedoTexture)
	}
	return material.NewConstantTexture(vec3From(def.Albedo)), nil
}

func buildTexture(tf *textureFile) (material.Texture, error) {
	switch tf.Type {
	case "checker":
		even := material.NewConstantTexture(vec3From(tf.Even))
		odd := material.NewConstantTexture(vec3From(tf.Odd))
		return material.NewCheckerTexture(tf.Scale, even, odd), nil
	case "image":
		return LoadImageTexture(tf.Path, tf.MaxDim)
	default:
		return nil, fmt.Errorf("unknown texture type %q", tf.Type)
	}
}

func lookupMaterial(name string, materials map[string]material.Material) (material.Material, error) {
	m, ok := materials[name]
	if !ok {
		return nil, fmt.Errorf("unknown material reference %q", name)
	}
	return m, nil
}

func buildObject(obj objectFile, materials map[string]material.Material) (geometry.Primitive, error) {
	switch obj.Type {
	case "constant_medium":
		if obj.Boundary == nil {
			return nil, fmt.Errorf("constant_medium requires a boundary object")
		}
		boundary, err := buildObject(*obj.Boundary, materials)
		if err != nil {
			return nil, fmt.Errorf("constant_medium boundary: %w", err)
		}
		phase, err := lookupMaterial(obj.Material, materials)
		if err != nil {
			return nil, err
		}
		return geometry.NewConstantMedium(boundary, obj.Density, phase), nil
	case "rotate":
		if obj.Object == nil {
			return nil, fmt.Errorf("rotate requires an object")
		}
		inner, err := buildObject(*obj.Object, materials)
		if err != nil {
			return nil, fmt.Errorf("rotate object: %w", err)
		}
		return geometry.NewRotateY(inner, obj.Angle*math.Pi/180), nil
	case "translate":
		if obj.Object == nil {
			return nil, fmt.Errorf("translate requires an object")
		}
		inner, err := buildObject(*obj.Object, materials)
		if err != nil {
			return nil, fmt.Errorf("translate object: %w", err)
		}
		return geometry.NewTranslate(inner, vec3From(obj.Offset)), nil
	}

	mat, err := lookupMaterial(obj.Material, materials)
	if err != nil {
		return nil, err
	}

	switch obj.Type {
	case "sphere":
		return geometry.NewSphere(vec3From(obj.Center), obj.Radius, mat), nil
	case "moving_sphere":
		return geometry.NewMovingSphere(vec3From(obj.Center), vec3From(obj.Center1), obj.Time0, obj.Time1, obj.Radius, mat), nil
	case "quad":
		return geometry.NewQuad(vec3From(obj.Q), vec3From(obj.U), vec3From(obj.V), mat), nil
	case "triangle":
		return geometry.NewTriangle(vec3From(obj.V0), vec3From(obj.V1), vec3From(obj.V2), mat), nil
	case "box":
		return geometry.NewBox(vec3From(obj.A), vec3From(obj.B), mat), nil
	default:
		return nil, fmt.Errorf("unknown object type %q", obj.Type)
	}
}
