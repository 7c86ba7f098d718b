package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spanmark/spanmark/internal/loader"
	"github.com/spanmark/spanmark/internal/markdown"
	"github.com/spanmark/spanmark/internal/styles"
	"github.com/spanmark/spanmark/internal/ui"
)

var (
	dumpFlag  = flag.Bool("dump", false, "write the span sequence as JSON lines to stdout instead of opening the viewer")
	widthFlag = flag.Int("width", 0, "wrap width for the viewer (0 uses the terminal width)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: spanmark [flags] <file|url|->\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "spanmark: %v\n", err)
		os.Exit(1)
	}
}

func run(ref string) error {
	var text string
	var err error
	if ref == "-" {
		text, err = loader.Read(os.Stdin, "stdin")
	} else {
		text, err = loader.Load(ref)
	}
	if err != nil {
		return err
	}

	doc := markdown.New().Convert(text)

	if *dumpFlag {
		return dumpSpans(os.Stdout, doc)
	}
	return view(doc, ref)
}

// dumpSpans writes the abstract span sequence, one JSON object per line,
// with no presentation attributes attached
func dumpSpans(w io.Writer, doc markdown.Document) error {
	enc := json.NewEncoder(w)
	for _, line := range doc.Lines {
		for _, span := range line.Spans {
			record := struct {
				Text       string `json:"text"`
				Block      string `json:"block"`
				Style      string `json:"style"`
				LinkTarget string `json:"linkTarget,omitempty"`
			}{
				Text:       span.Text,
				Block:      span.Block.String(),
				Style:      span.Style.String(),
				LinkTarget: span.LinkTarget,
			}
			if err := enc.Encode(record); err != nil {
				return fmt.Errorf("failed to encode span: %w", err)
			}
		}
	}
	return nil
}

func view(doc markdown.Document, ref string) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Failed to get config directory: %v", err)
		configDir = "."
	}
	configDir = filepath.Join(configDir, "spanmark")

	// Keep stdlib logging off the screen while the viewer owns it.
	if logFile := openLogFile(configDir); logFile != nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	settings, err := ui.LoadSettings(configDir)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		settings = ui.DefaultSettings()
	}
	if *widthFlag > 0 {
		settings.WrapWidth = *widthFlag
	}

	title := ref
	if ref != "-" {
		title = filepath.Base(ref)
	}

	viewer := ui.NewViewer(doc, styles.NewTheme(), settings, title)
	return viewer.Run()
}

func openLogFile(configDir string) *os.File {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(configDir, "spanmark.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	return f
}
