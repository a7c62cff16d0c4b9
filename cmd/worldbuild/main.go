package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-theft-craft/anvil/internal/buildplan"
	"github.com/go-theft-craft/anvil/pkg/world"
	"github.com/go-theft-craft/anvil/pkg/world/anvil"
)

func main() {
	planPath := flag.String("plan", "plan.yaml", "path to the build plan")
	inPath := flag.String("in", "", "existing region file to edit instead of starting empty")
	outDir := flag.String("out", "./region", "output directory for region files")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	plan, err := buildplan.Load(*planPath)
	if err != nil {
		log.Error("load build plan", "error", err)
		os.Exit(1)
	}
	base := "none"
	if plan.Base != nil {
		base = plan.Base.Preset
	}
	log.Info("build plan loaded", "path", *planPath, "base", base, "steps", len(plan.Steps))

	var region *world.Region
	if *inPath == "" {
		region, err = plan.Build()
		if err != nil {
			log.Error("apply build plan", "error", err)
			os.Exit(1)
		}
	} else {
		region, err = loadRegion(*inPath, plan)
		if err != nil {
			log.Error("load region file", "error", err)
			os.Exit(1)
		}
		log.Info("region loaded", "file", *inPath)
		if err := plan.Apply(region); err != nil {
			log.Error("apply build plan", "error", err)
			os.Exit(1)
		}
	}

	chunks := 0
	for _, c := range region.Chunks() {
		if c != nil {
			chunks++
		}
	}
	log.Info("region built", "x", region.X, "z", region.Z, "chunks", chunks)

	if err := anvil.Save(*outDir, region); err != nil {
		log.Error("save region file", "error", err)
		os.Exit(1)
	}
	log.Info("region saved", "file", fmt.Sprintf("%s/r.%d.%d.mca", *outDir, region.X, region.Z))
}

// loadRegion reads an existing region file and checks it against the plan.
func loadRegion(path string, plan buildplan.Plan) (*world.Region, error) {
	if plan.Base != nil {
		return nil, errors.New("a plan with a base cannot edit an existing region")
	}
	r, err := anvil.Load(path)
	if err != nil {
		return nil, err
	}
	if r.X != plan.Region.X || r.Z != plan.Region.Z {
		return nil, fmt.Errorf("region file is (%d,%d) but the plan targets (%d,%d)", r.X, r.Z, plan.Region.X, plan.Region.Z)
	}
	return r, nil
}
