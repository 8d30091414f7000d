package commands

import (
	"fmt"

	"github.com/tobyv/scenesweep/internal/project"
	"github.com/tobyv/scenesweep/internal/resolver"
	"github.com/tobyv/scenesweep/internal/scanner"
	"github.com/tobyv/scenesweep/internal/suggest"
	"github.com/tobyv/scenesweep/internal/ui"
)

// HandleScan refreshes the orphan scan and prints the result. Optional args
// narrow the output to specific categories.
func HandleScan(env *Env, args []string) error {
	categories, err := filterCategories(args)
	if err != nil {
		return err
	}

	proj, err := project.Load(env.ProjectPath)
	if err != nil {
		return err
	}

	s := scanner.New(proj, resolver.New(env.Root))
	result := s.Scan()

	printResult(env, proj, result, categories)
	return nil
}

// filterCategories validates category args; no args means all categories
func filterCategories(args []string) ([]string, error) {
	if len(args) == 0 {
		return project.Categories, nil
	}

	valid := make(map[string]bool, len(project.Categories))
	for _, c := range project.Categories {
		valid[c] = true
	}

	var categories []string
	for _, arg := range args {
		if !valid[arg] {
			return nil, fmt.Errorf("unknown category '%s' (categories: %v)", arg, project.Categories)
		}
		categories = append(categories, arg)
	}
	return categories, nil
}

// printResult lists orphaned resources per category, with replacement hints
// when suggestions are enabled.
func printResult(env *Env, proj *project.Project, result scanner.Result, categories []string) {
	var candidates []string
	total := 0

	for _, category := range categories {
		keys := result[category]
		total += len(keys)
		if len(keys) == 0 {
			continue
		}

		fmt.Println(ui.FormatCategory(category, len(keys)))
		table := proj.Table(category)
		for _, key := range keys {
			file, _ := table.LinkFile(key)
			fmt.Println(ui.FormatOrphan(key, file))

			if !env.Cfg.Suggestions {
				continue
			}
			if candidates == nil {
				candidates = suggest.Candidates(env.Root)
			}
			if hint, ok := suggest.Closest(file, candidates); ok {
				fmt.Println(ui.FormatHint(hint))
			}
		}
	}

	if total == 0 {
		fmt.Println("No orphaned resources")
	} else {
		fmt.Printf("%d orphaned resource(s)\n", total)
	}
}
