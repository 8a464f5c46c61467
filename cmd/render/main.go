// Command render is the CLI entrypoint: it parses
// flags, loads a scene file, drives the renderer, and writes PNG
// output. Scene parsing, flag parsing, and image encoding are all
// explicitly out of the core's scope; this file is the thin plumbing
// that wires them to internal/renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/loaders"
	"github.com/nordlicht/spectra/internal/renderer"
	"github.com/nordlicht/spectra/internal/sampler"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: render <render|validate> [flags]")
}

type flags struct {
	input string
	output string
	width int
	height int
	samples int
	maxDepth int
	mode string
	samp string
	bvh string
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	f := &flags{}
	fs.StringVar(&f.input, "input", "", "scene file path")
	fs.StringVar(&f.output, "output", "render.png", "output PNG path")
	fs.IntVar(&f.width, "width", 400, "image width")
	fs.IntVar(&f.height, "height", 300, "image height")
	fs.IntVar(&f.samples, "samples", 64, "samples per pixel")
	fs.IntVar(&f.maxDepth, "max-depth", 20, "maximum path depth")
	fs.StringVar(&f.mode, "mode", "path-tracing", "render mode: path-tracing|normal-map|bvh-test-count|primitive-test-count")
	fs.StringVar(&f.samp, "sampler", "random", "sampler: random|blue")
	fs.StringVar(&f.bvh, "bvh", "sah", "BVH build: lam|sah")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.input == "" {
		return nil, fmt.Errorf("--input is required")
	}
	return f, nil
}

func modeFromFlag(s string) (renderer.Mode, error) {
	switch s {
	case "path-tracing":
		return renderer.PathTracing, nil
	case "normal-map":
		return renderer.NormalMap, nil
	case "bvh-test-count":
		return renderer.BvhTestCount, nil
	case "primitive-test-count":
		return renderer.PrimitiveTestCount, nil
	default:
		return 0, fmt.Errorf("unknown --mode %q", s)
	}
}

func bvhFromFlag(s string) (geometry.BuildKind, error) {
	switch s {
	case "lam":
		return geometry.BuildLongestAxisMidpoint, nil
	case "sah":
		return geometry.BuildSAH, nil
	default:
		return 0, fmt.Errorf("unknown --bvh %q", s)
	}
}

func samplerFromFlag(s string, spp int) (sampler.Sampler, error) {
	switch s {
	case "random":
		return sampler.NewUniformSampler(), nil
	case "blue":
		return sampler.NewBlueNoiseSampler(spp)
	default:
		return nil, fmt.Errorf("unknown --sampler %q", s)
	}
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	mode, err := modeFromFlag(f.mode)
	if err != nil {
		return err
	}
	bvhKind, err := bvhFromFlag(f.bvh)
	if err != nil {
		return err
	}
	// Validate the sampler/SPP combination before loading the scene,
	// per the build-time configuration check.
	samp, err := samplerFromFlag(f.samp, f.samples)
	if err != nil {
		return err
	}

	scn, err := loaders.Load(f.input, float64(f.width)/float64(f.height), bvhKind)
	if err != nil {
		return err
	}

	start := time.Now()
	pixels := renderer.Render(renderer.Config{
		Width: f.width,
		Height: f.height,
		Samples: f.samples,
		MaxDepth: f.maxDepth,
		Mode: mode,
	}, scn, samp)
	fmt.Printf("Render completed in %v\n", time.Since(start))

	img := renderer.ToneMapToRGBA(pixels, f.width, f.height)

	out, err := os.Create(f.output)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", f.output, err)
	}
	defer out.Close()

	if err := renderer.WritePNG(out, img); err != nil {
		return fmt.Errorf("failed to write PNG to %q: %w", f.output, err)
	}

	fmt.Printf("Wrote %s\n", f.output)
	return nil
}

// runValidate checks the --sampler/--samples combination, loads a scene
// file (which itself builds the BVH) and reports success, catching
// sampler, scene-load and build-time errors before a real render is
// attempted. Per the CLI contract the scene path is a
// positional argument (`validate FILE`), not a flag.
func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	var bvh, samp string
	var samples int
	fs.StringVar(&bvh, "bvh", "sah", "BVH build: lam|sah")
	fs.StringVar(&samp, "sampler", "random", "sampler: random|blue")
	fs.IntVar(&samples, "samples", 64, "samples per pixel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: validate FILE")
	}
	input := fs.Arg(0)

	bvhKind, err := bvhFromFlag(bvh)
	if err != nil {
		return err
	}
	if _, err := samplerFromFlag(samp, samples); err != nil {
		return err
	}
	if _, err := loaders.Load(input, 1.0, bvhKind); err != nil {
		return err
	}

	fmt.Printf("%s: OK\n", input)
	return nil
}
