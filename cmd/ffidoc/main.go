package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eigerco/uniffi-go/docs"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		source   = flag.String("source", "", "Go source file or directory to extract docs from")
		jsonOut  = flag.Bool("json", false, "Emit machine-readable JSON instead of styled text")
		nameOnly = flag.String("name", "", "Show only the named function or structure")
	)
	flag.Parse()

	if *source == "" {
		fmt.Fprintln(os.Stderr, "Usage: ffidoc -source <file.go|dir> [-json] [-name Identifier]")
		os.Exit(1)
	}

	if err := run(*source, *jsonOut, *nameOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(source string, jsonOut bool, nameOnly string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}

	var doc *docs.Documentation
	if info.IsDir() {
		doc, err = docs.ExtractDir(source)
	} else {
		doc, err = docs.ExtractFile(source)
	}
	if err != nil {
		return err
	}

	if nameOnly != "" {
		doc = filterByName(doc, nameOnly)
		if len(doc.Functions) == 0 && len(doc.Structures) == 0 {
			return fmt.Errorf("no documented declaration named %q", nameOnly)
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	render(doc)
	return nil
}

func filterByName(doc *docs.Documentation, name string) *docs.Documentation {
	filtered := &docs.Documentation{
		Functions:  make(map[string]docs.Function),
		Structures: make(map[string]docs.Structure),
	}
	if fn, ok := doc.Functions[name]; ok {
		filtered.Functions[name] = fn
	}
	if s, ok := doc.Structures[name]; ok {
		filtered.Structures[name] = s
	}
	return filtered
}

func render(doc *docs.Documentation) {
	if len(doc.Functions) > 0 {
		fmt.Println(titleStyle.Render("Functions"))
		for _, name := range sortedKeys(doc.Functions) {
			fmt.Println()
			renderFunction(name, doc.Functions[name], "")
		}
		fmt.Println()
	}

	if len(doc.Structures) > 0 {
		fmt.Println(titleStyle.Render("Structures"))
		for _, name := range sortedKeys(doc.Structures) {
			fmt.Println()
			renderStructure(name, doc.Structures[name])
		}
	}
}

func renderFunction(name string, fn docs.Function, indent string) {
	fmt.Printf("%s%s\n", indent, nameStyle.Render(name))
	printBlock(indent+"  ", fn.Description)

	if len(fn.ArgumentDescriptions) > 0 {
		fmt.Printf("%s  %s\n", indent, sectionStyle.Render("arguments:"))
		for _, arg := range sortedKeys(fn.ArgumentDescriptions) {
			fmt.Printf("%s    %s  %s\n", indent, memberStyle.Render(arg), fn.ArgumentDescriptions[arg])
		}
	}
	if fn.ReturnDescription != "" {
		fmt.Printf("%s  %s\n", indent, sectionStyle.Render("returns:"))
		printBlock(indent+"    ", fn.ReturnDescription)
	}
}

func renderStructure(name string, s docs.Structure) {
	fmt.Println(nameStyle.Render(name))
	printBlock("  ", s.Description)

	if len(s.Members) > 0 {
		fmt.Printf("  %s\n", sectionStyle.Render("members:"))
		for _, member := range sortedKeys(s.Members) {
			fmt.Printf("    %s  %s\n", memberStyle.Render(member), s.Members[member])
		}
	}
	if len(s.Methods) > 0 {
		fmt.Printf("  %s\n", sectionStyle.Render("methods:"))
		for _, method := range sortedKeys(s.Methods) {
			renderFunction(method, s.Methods[method], "    ")
		}
	}
}

func printBlock(indent, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Printf("%s%s\n", indent, line)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
