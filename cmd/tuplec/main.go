// Command tuplec is the TUPLE compiler front-end driver: it reads a numbered
// test source file, runs it through the lexer/parser pipeline, and writes
// the four report artifacts spec.md §6 defines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tuplelang/tuplec/internal/pipeline"
	"github.com/tuplelang/tuplec/internal/report"
)

func main() {
	log.SetFlags(0)

	fileNum := flag.Int("file", 0, "test file number to compile (Tests/test0N.tpl); 0 prompts interactively")
	root := flag.String("root", ".", "directory containing Tests/, TokenStream/, SymbolTable/, ErrorStream/, ParserTrace/")
	debug := flag.Bool("debug", false, "dump both symbol tables with repr after compiling")
	flag.Parse()

	n := *fileNum
	if n == 0 {
		var err error
		n, err = promptForFileNumber()
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	if err := run(*root, n, *debug); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func promptForFileNumber() (int, error) {
	fmt.Print("Enter the file number: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading file number: %w", err)
	}
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d", &n); err != nil {
		return 0, fmt.Errorf("parsing file number: %w", err)
	}
	return n, nil
}

func run(root string, fileNum int, debug bool) error {
	srcPath := filepath.Join(root, "Tests", fmt.Sprintf("test0%d.tpl", fileNum))
	src, err := readLines(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	lexed, parsed := pipeline.Compile(src)

	if err := writeReport(root, "TokenStream", fmt.Sprintf("test0%d.out", fileNum), func(w *os.File) error {
		return report.WriteTokenStream(w, lexed.Lines)
	}); err != nil {
		return err
	}

	if err := writeReport(root, "SymbolTable", fmt.Sprintf("test0%d.sym", fileNum), func(w *os.File) error {
		return report.WriteSymbolTable(w, lexed.LexicalTbl)
	}); err != nil {
		return err
	}

	if err := writeReport(root, "ErrorStream", fmt.Sprintf("test0%d.err", fileNum), func(w *os.File) error {
		return report.WriteErrorStream(w, lexed.Errors, parsed.ParseErrors, parsed.SemanticErrors)
	}); err != nil {
		return err
	}

	if err := writeReport(root, "ParserTrace", fmt.Sprintf("test0%d.tr", fileNum), func(w *os.File) error {
		return report.WriteParserTrace(w, parsed.Trace)
	}); err != nil {
		return err
	}

	if debug {
		lexed.LexicalTbl.DebugPrint()
		parsed.Symbols.DebugPrint()
	}

	log.Printf("compiled test0%d.tpl: %d lexical, %d syntax, %d semantic diagnostics",
		fileNum, countMessages(lexed.Errors), countMessages(parsed.ParseErrors), countMessages(parsed.SemanticErrors))
	return nil
}

// readLines reads path and splits it into lines with trailing newlines
// stripped, mirroring Python's readlines() input to the original lexer
// (each Lexer instance in internal/lexer re-appends its own newline
// sentinel, so none should remain here).
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

func writeReport(root, dir, name string, fn func(*os.File) error) error {
	path := filepath.Join(root, dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return fn(f)
}

func countMessages(m map[int][]string) int {
	n := 0
	for _, msgs := range m {
		n += len(msgs)
	}
	return n
}
