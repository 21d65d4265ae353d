// main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	sparkline "github.com/forestly/go-sparkline"
)

func main() {
	// --- Argument Parsing using flag package ---
	outputFile := flag.String("o", "", "Output file path (default: stdout)")
	sheetName := flag.String("sheet", "", "Worksheet name for .xlsx datasets (default: first sheet)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <dataset.(json|csv|xlsx)> <params.json> <format>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nArguments:")
		fmt.Fprintln(os.Stderr, "  <dataset>       Path to the tabular dataset (JSON, CSV or XLSX).")
		fmt.Fprintln(os.Stderr, "  <params.json>   Path to the sparkline parameter file.")
		fmt.Fprintln(os.Stderr, "  <format>        Output format (js, html, png, jpg/jpeg).")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	datasetFile := args[0]
	paramsFile := args[1]
	exportFormat := strings.ToLower(args[2])

	// --- Input Validation ---
	supportedFormats := map[string]bool{"js": true, "html": true, "png": true, "jpg": true, "jpeg": true}
	if !supportedFormats[exportFormat] {
		log.Fatalf("Unsupported export format '%s'. Supported formats: js, html, png, jpg/jpeg", exportFormat)
	}

	// --- Dataset Loading ---
	log.Printf("Reading dataset file: %s", datasetFile)
	ds, err := loadDataset(datasetFile, *sheetName)
	if err != nil {
		log.Fatalf("Error loading dataset '%s': %v", datasetFile, err)
	}
	log.Printf("Loaded %d columns, %d rows.", len(ds.Columns()), ds.Rows())

	// --- Parameter Loading ---
	log.Printf("Reading parameter file: %s", paramsFile)
	paramBytes, err := os.ReadFile(paramsFile)
	if err != nil {
		log.Fatalf("Error reading parameter file '%s': %v", paramsFile, err)
	}
	var req sparkline.PlotRequest
	if err := json.Unmarshal(paramBytes, &req); err != nil {
		log.Fatalf("Error parsing parameter JSON '%s': %v", paramsFile, err)
	}

	// --- Determine Output Writer ---
	var outputWriter io.Writer = os.Stdout
	var outFile *os.File

	if *outputFile != "" {
		log.Printf("Output directed to file: %s", *outputFile)
		outFile, err = os.Create(*outputFile)
		if err != nil {
			log.Fatalf("Error creating output file '%s': %v", *outputFile, err)
		}
		defer func() {
			if outFile != nil {
				if closeErr := outFile.Close(); closeErr != nil {
					log.Printf("Error closing output file '%s': %v", *outputFile, closeErr)
				}
			}
		}()
		outputWriter = outFile
	} else {
		log.Println("Output directed to stdout.")
	}

	// --- Generation ---
	log.Printf("Generating output for format: %s", exportFormat)
	var genErr error

	switch exportFormat {
	case "js":
		jsCode, errJS := sparkline.GenerateJS(ds, req)
		if errJS != nil {
			genErr = fmt.Errorf("JS generation failed: %w", errJS)
		} else if _, genErr = io.WriteString(outputWriter, jsCode); genErr != nil {
			genErr = fmt.Errorf("failed to write JS output: %w", genErr)
		}
	case "html":
		htmlString, errHTML := sparkline.GenerateHTML(ds, req)
		if errHTML != nil {
			genErr = fmt.Errorf("HTML generation failed: %w", errHTML)
		} else if _, genErr = io.WriteString(outputWriter, htmlString); genErr != nil {
			genErr = fmt.Errorf("failed to write HTML output: %w", genErr)
		}
	case "png", "jpg", "jpeg":
		genErr = sparkline.GenerateImage(ds, req, exportFormat, outputWriter)
	}

	// --- Handle Generation Errors ---
	if genErr != nil {
		if outFile != nil && *outputFile != "" {
			// Attempt cleanup of a potentially incomplete file.
			log.Printf("Attempting to remove potentially incomplete file: %s", *outputFile)
			if removeErr := os.Remove(*outputFile); removeErr != nil {
				log.Printf("Warning: Could not remove output file '%s' after error: %v", *outputFile, removeErr)
			}
		}
		log.Fatalf("Error generating %s: %v", exportFormat, genErr)
	}

	log.Printf("Successfully generated %s output.", strings.ToUpper(exportFormat))
	if *outputFile != "" {
		log.Printf("Output saved to: %s", *outputFile)
	}
}

// loadDataset picks a loader from the file extension.
func loadDataset(path, sheet string) (*sparkline.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return sparkline.DatasetFromJSON(data)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return sparkline.DatasetFromCSV(f)
	case ".xlsx":
		return sparkline.DatasetFromXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .json, .csv or .xlsx)", filepath.Ext(path))
	}
}
