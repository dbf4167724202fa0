package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"bastianbuilt.com/internal/config"
	"bastianbuilt.com/internal/content"
	"bastianbuilt.com/internal/handlers"
	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/services"
	"bastianbuilt.com/internal/sitemap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> <site-url>  (override the configured site URL)")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	v := viper.New()
	if err := config.ReadConfigFile(v, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 2 {
		cfg.Site.URL = os.Args[2]
	}
	baseURL := cfg.SiteURL()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	projects := services.NewProjectService(content.Default())
	router := handlers.SetupRoutes(handlers.Deps{
		Config:   cfg,
		Logger:   logging.Nop(),
		Projects: projects,
	})

	fmt.Printf("Generating sitemap for %s (%d projects)...\n", baseURL, len(projects.List()))

	entries, err := handlers.NewSitemapBuilder(projects, baseURL, time.Now).Build(router)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(outputDir, "sitemap.xml")
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR creating file: %v\n", err)
		os.Exit(1)
	}
	if err := sitemap.WriteXML(f, entries); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Created sitemap.xml (%d urls)\n", len(entries))

	fmt.Println("Generating robots.txt...")
	if err := os.WriteFile(filepath.Join(outputDir, "robots.txt"), []byte(sitemap.Robots(baseURL)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("  Created robots.txt")

	fmt.Println("Done!")
}
