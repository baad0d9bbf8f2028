package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sukalov/lyricecho/internal/config"
	"github.com/sukalov/lyricecho/internal/logger"
	"github.com/sukalov/lyricecho/internal/lyrics"
	"github.com/sukalov/lyricecho/internal/utils"
)

func main() {
	var outputFile string

	flag.StringVar(&outputFile, "output", "extracted_lyrics.txt", "Output file name")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <URL>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "Example: %s https://genius.com/The-beatles-yesterday-lyrics\n", os.Args[0])
		os.Exit(1)
	}

	url := args[0]

	fmt.Println("=== Genius Lyrics Extractor CLI ===")
	fmt.Printf("URL: %s\n", url)
	fmt.Printf("Output file: %s\n", outputFile)
	fmt.Println()

	logger.Init(logger.Options{Level: utils.GetEnv("LOG_LEVEL", "info")})

	timeout, err := utils.GetEnvDuration("HTTP_TIMEOUT", config.DefaultHTTPTimeout)
	if err != nil {
		log.Fatalf("Invalid HTTP_TIMEOUT: %v", err)
	}

	ctx := context.Background()
	service := lyrics.NewService(timeout)

	song, err := service.Lyrics(ctx, url)
	if err != nil {
		logger.Error("error extracting lyrics", "url", url, "error", err)
		log.Fatalf("Error extracting lyrics: %v", err)
	}
	if !song.Found {
		logger.Warn("no lyrics on page", "url", url)
	}

	facts, err := service.Facts(ctx, url)
	if err != nil {
		logger.Error("error extracting facts", "url", url, "error", err)
		log.Fatalf("Error extracting facts: %v", err)
	}

	var out strings.Builder
	out.WriteString(song.Text)
	out.WriteString("\n\nRelease Date: ")
	out.WriteString(facts.ReleaseDate)
	out.WriteString("\n")
	out.WriteString(facts.Facts)
	out.WriteString("\n")

	if err := os.WriteFile(outputFile, []byte(out.String()), 0644); err != nil {
		logger.Error("error saving lyrics file", "file", outputFile, "error", err)
		log.Fatalf("Error saving file: %v", err)
	}
	logger.Success("lyrics extraction completed", "url", url, "output", outputFile, "length", len(song.Text))

	fmt.Printf("Lyrics saved to: %s\n", outputFile)
	fmt.Println("=== EXTRACTION COMPLETED SUCCESSFULLY ===")
}
