// Command gedcom inspects GEDCOM files: prints record statistics,
// looks up individuals, validates cross-record references, and dumps
// the parsed document as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	gedcom "github.com/gedcom/go"
)

const (
	exitIO         = 1
	exitValidation = 2
	exitUsage      = 3
)

func main() {
	app := &cli.App{
		Name:      "gedcom",
		Usage:     "GEDCOM inspection tool",
		ArgsUsage: "<file.ged>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "individual",
				Usage: "display a single individual by `XREF` (e.g. @I1@)",
			},
			&cli.StringFlag{
				Name:  "individual-lastname",
				Usage: "filter individuals by `LASTNAME` (case-insensitive)",
			},
			&cli.StringFlag{
				Name:  "individual-firstname",
				Usage: "filter individuals by `FIRSTNAME` (case-insensitive)",
			},
			&cli.BoolFlag{
				Name:  "validate",
				Usage: "validate the file and output a report",
			},
			&cli.StringFlag{
				Name:  "validation-level",
				Usage: "validation `LEVEL`: strict or lenient",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the parsed document as JSON",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		if _, ok := err.(cli.ExitCoder); !ok {
			err = cli.Exit(fmt.Sprintf("Error: %v", err), exitUsage)
		}
		cli.HandleExitCoder(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		if c.NArg() == 0 {
			return cli.Exit("Error: Usage error: Missing filename.", exitUsage)
		}
		return cli.Exit(fmt.Sprintf("Error: Usage error: Found more args than expected: %v", c.Args().Slice()), exitUsage)
	}

	level := c.String("validation-level")
	if level == "" {
		level = "lenient"
	} else if !c.Bool("validate") {
		return cli.Exit("Error: Usage error: --validation-level requires --validate", exitUsage)
	}
	if level != "strict" && level != "lenient" {
		return cli.Exit(fmt.Sprintf("Error: Usage error: Unknown validation level: %s (expected: strict or lenient)", level), exitUsage)
	}

	contents, err := os.ReadFile(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: IO error: %v", err), exitIO)
	}

	if c.Bool("validate") {
		if c.String("individual") != "" || c.String("individual-lastname") != "" || c.String("individual-firstname") != "" {
			return cli.Exit("Error: Usage error: --validate cannot be combined with --individual filters", exitUsage)
		}
		return validate(string(contents), level)
	}

	result, err := gedcom.ParseString(string(contents))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: Gedcom error: %v", err), exitValidation)
	}
	doc := result.Document

	if c.Bool("json") {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), exitIO)
		}
		fmt.Println(string(out))
		return nil
	}

	if xref := c.String("individual"); xref != "" {
		for _, indi := range doc.Individuals {
			if indi.Xref == xref {
				fmt.Println(indi)
				return nil
			}
		}
		return cli.Exit(fmt.Sprintf("Error: Usage error: Individual not found: %s", xref), exitUsage)
	}

	if c.String("individual-lastname") != "" || c.String("individual-firstname") != "" {
		listIndividuals(doc, c.String("individual-firstname"), c.String("individual-lastname"))
		return nil
	}

	printStats(doc)
	return nil
}

func validate(contents, level string) error {
	parser := gedcom.NewParser().Strict(level == "strict").ValidateReferences(true)

	var errors []string
	var warnings []string

	result, err := parser.ParseString(contents)
	if err != nil {
		errors = append(errors, err.Error())
	} else {
		for _, w := range result.Warnings {
			warnings = append(warnings, w.String())
		}
		for _, v := range result.ValidationErrors {
			errors = append(errors, v.String())
		}
	}

	fmt.Printf("Validation: %s - errors: %d, warnings: %d\n", level, len(errors), len(warnings))
	for _, e := range errors {
		fmt.Printf("error: %s\n", e)
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if len(errors) > 0 {
		return cli.Exit("", exitValidation)
	}
	return nil
}

// listIndividuals prints the individuals whose names match both
// filters. An empty filter matches everyone; a missing name matches
// nothing.
func listIndividuals(doc *gedcom.Document, firstname, lastname string) {
	filterFirst := strings.ToLower(firstname)
	filterLast := strings.ToLower(lastname)

	for _, indi := range doc.Individuals {
		first, last := splitDisplayName(indi)

		if filterLast != "" && !strings.Contains(strings.ToLower(last), filterLast) {
			continue
		}
		if filterFirst != "" && !strings.Contains(strings.ToLower(first), filterFirst) {
			continue
		}
		fmt.Println(indi)
	}
}

// splitDisplayName treats the final token of the display name as the
// last name and everything before it as the first name.
func splitDisplayName(indi *gedcom.Individual) (first, last string) {
	display := "(Unknown)"
	if indi.Name != nil {
		display = indi.Name.String()
	}
	parts := strings.Fields(strings.ReplaceAll(display, "/", " "))
	if len(parts) == 0 {
		return "", ""
	}
	last = parts[len(parts)-1]
	first = strings.Join(parts[:len(parts)-1], " ")
	return first, last
}

func printStats(doc *gedcom.Document) {
	fmt.Println("----------------------")
	fmt.Println("| GEDCOM Data Stats: |")
	fmt.Println("----------------------")
	fmt.Printf("  submissions: %d\n", len(doc.Submissions))
	fmt.Printf("  submitters: %d\n", len(doc.Submitters))
	fmt.Printf("  individuals: %d\n", len(doc.Individuals))
	fmt.Printf("  families: %d\n", len(doc.Families))
	fmt.Printf("  repositories: %d\n", len(doc.Repositories))
	fmt.Printf("  sources: %d\n", len(doc.Sources))
	fmt.Printf("  multimedia: %d\n", len(doc.Multimedia))
	fmt.Println("----------------------")
}
