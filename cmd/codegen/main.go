package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-theft-craft/anvil/cmd/codegen/internal/generator"
)

func main() {
	schemeDir := flag.String("scheme", "", "path to the scheme directory (e.g. ./scheme/pc-1.15.2)")
	outDir := flag.String("out", "./pkg/gamedata", "output directory for the generated block table")
	pkg := flag.String("pkg", "gamedata", "package name of the generated file")

	flag.Parse()

	if *schemeDir == "" {
		fmt.Fprintln(os.Stderr, "error: -scheme flag is required")
		flag.Usage()
		os.Exit(1)
	}

	version := filepath.Base(*schemeDir)

	fmt.Printf("codegen: generating %s from %s\n", *pkg, *schemeDir)

	cfg := generator.Config{
		SchemeDir: *schemeDir,
		OutDir:    *outDir,
		Package:   *pkg,
		Version:   version,
	}

	if err := generator.Run(cfg); err != nil {
		log.Fatalf("codegen failed: %v", err)
	}

	fmt.Printf("codegen: done, output in %s\n", *outDir)
}
