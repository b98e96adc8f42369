package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-semfield/pkg/registry"
	"github.com/goliatone/go-semfield/pkg/semantic"
)

func main() {
	prefix := flag.String("prefix", "", "registry prefix to look up")
	curie := flag.String("curie", "", "compact URI to validate (prefix:localId)")
	source := flag.String("registry", "", "registry snapshot path or URL (embedded snapshot if empty)")
	asJSON := flag.Bool("json", false, "print the record as JSON")
	list := flag.Bool("list", false, "list registered prefixes")
	flag.Parse()

	reg, err := loadRegistry(*source)
	if err != nil {
		log.Fatalf("Failed to load registry: %v", err)
	}

	if *list {
		for _, p := range reg.Prefixes() {
			fmt.Println(p)
		}
		return
	}

	if *curie != "" {
		canonical, err := semantic.ParseCURIE(reg, *curie)
		if err != nil {
			log.Fatalf("Invalid CURIE: %v", err)
		}
		fmt.Println(canonical)
		return
	}

	lookup := *prefix
	if lookup == "" {
		lookup, err = pickPrefix(reg)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				os.Exit(130)
			}
			log.Fatalf("Failed to pick a prefix: %v", err)
		}
	}

	rec, err := reg.Resolve(lookup)
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode record: %v", err)
		}
		fmt.Println(string(out))
		return
	}
	printRecord(rec)
}

func loadRegistry(source string) (registry.Registry, error) {
	if source == "" {
		snapshot, err := registry.Default()
		if err != nil {
			return nil, err
		}
		return snapshot, nil
	}
	loader := registry.NewLoader(registry.LoaderOptions{})
	snapshot, err := loader.Load(context.Background(), parseSource(source))
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func parseSource(raw string) registry.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return registry.SourceFromURL(path)
	}
	return registry.SourceFromFile(path)
}

func pickPrefix(reg registry.Registry) (string, error) {
	prefixes := reg.Prefixes()
	if len(prefixes) == 0 {
		return "", errors.New("registry has no prefixes")
	}
	var picked string
	prompt := &survey.Select{
		Message:  "Pick a prefix:",
		Options:  prefixes,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return picked, nil
}

func printRecord(rec registry.Record) {
	fmt.Printf("prefix:   %s\n", rec.Prefix)
	fmt.Printf("name:     %s\n", rec.Name)
	if rec.Homepage != "" {
		fmt.Printf("homepage: %s\n", rec.Homepage)
	}
	fmt.Printf("entry:    %s\n", rec.URI())
	if rec.Pattern != "" {
		fmt.Printf("pattern:  %s\n", rec.Pattern)
	}
	if len(rec.Examples) > 0 {
		fmt.Printf("examples: %s\n", strings.Join(rec.Examples, ", "))
	}
	if len(rec.Synonyms) > 0 {
		fmt.Printf("synonyms: %s\n", strings.Join(rec.Synonyms, ", "))
	}
	if len(rec.Mappings) > 0 {
		fmt.Println("mappings:")
		for from, to := range rec.Mappings {
			fmt.Printf("  %s: %s\n", from, to)
		}
	}
	if rec.Description != "" {
		fmt.Printf("\n%s\n", rec.Description)
	}
}
