package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/wanlwanl/fork-typespec/internal/compiler"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/types"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: adlc <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  check <file>    Compile an ADL source file and report diagnostics\n")
		fmt.Fprintf(os.Stderr, "  build [manifest]  Compile the project described by %s\n", compiler.ManifestFilename)
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "check":
		runCheck(args)
	case "build":
		runBuild(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runCheck(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: adlc check <file>\n")
		os.Exit(1)
	}
	compileFile(args[0])
}

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	entry := fs.String("entry", "", "entry point, overrides the manifest")
	fs.Parse(args)

	path := compiler.ManifestFilename
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	manifest, err := compiler.LoadManifest(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adlc: %v\n", err)
		os.Exit(1)
	}
	if *entry != "" {
		manifest.Entry = *entry
	}
	compileFile(manifest.Entry)
}

func compileFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adlc: %v\n", err)
		os.Exit(1)
	}

	prog := compiler.Compile(path, string(source))

	formatter := diag.NewFormatter()
	formatter.AddSource(path, string(source))
	for _, d := range prog.Diagnostics {
		formatter.Format(d)
	}
	if prog.HasErrors() {
		os.Exit(1)
	}

	printSummary(prog)
}

func printSummary(prog *compiler.Program) {
	names := make([]string, 0, len(prog.Globals))
	for name := range prog.Globals {
		names = append(names, name)
	}
	sort.Strings(names)

	models, namespaces := 0, 0
	for _, name := range names {
		switch t := prog.Globals[name].(type) {
		case *types.Model:
			models++
			fmt.Printf("model %s (%d properties)\n", name, len(t.Properties))
		case *types.Namespace:
			namespaces++
			fmt.Printf("namespace %s (%d members)\n", name, len(t.Properties))
		}
	}
	fmt.Printf("checked %d model(s), %d namespace(s), %d decorator invocation(s)\n",
		models, namespaces, len(prog.Invocations))
}
