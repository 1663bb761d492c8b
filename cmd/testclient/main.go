package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	serverAddr = flag.String("addr", "http://localhost:8080", "Oversett server base URL")
	sourceLang = flag.String("source", "en", "Source language code (e.g., en, fr)")
	targetLang = flag.String("target", "es", "Target language code (e.g., en, fr)")
	textFile   = flag.String("file", "", "Path to text file to translate")
	text       = flag.String("text", "", "Text to translate (if file not provided)")
	listLangs  = flag.Bool("languages", false, "List supported languages and exit")
)

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Detail         string `json:"detail"`
}

type languageEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	httpClient := &http.Client{Timeout: 60 * time.Second}

	if *listLangs {
		printLanguages(logger, httpClient, *serverAddr)
		return
	}

	// Read text to translate
	var textToTranslate string
	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			logger.WithError(err).Fatalf("Failed to read file: %s", *textFile)
		}
		textToTranslate = string(data)
	} else if *text != "" {
		textToTranslate = *text
	} else {
		logger.Fatal("Either -file or -text must be provided")
	}

	logger.WithFields(logrus.Fields{
		"server":      *serverAddr,
		"source_lang": *sourceLang,
		"target_lang": *targetLang,
		"text_length": len(textToTranslate),
	}).Info("Sending translation request...")

	body, err := json.Marshal(translateRequest{
		Text:       textToTranslate,
		SourceLang: *sourceLang,
		TargetLang: *targetLang,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to encode request")
	}

	startTime := time.Now()
	resp, err := httpClient.Post(*serverAddr+"/translate", "application/json", bytes.NewReader(body))
	if err != nil {
		logger.WithError(err).Fatal("Request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Fatal("Failed to read response")
	}

	var result translateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		logger.WithError(err).Fatalf("Failed to decode response: %s", string(respBody))
	}

	if resp.StatusCode != http.StatusOK {
		logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"detail": result.Detail,
		}).Fatal("Translation was not successful")
	}

	duration := time.Since(startTime)

	// Output results
	separator := strings.Repeat("=", 80)
	dashLine := strings.Repeat("-", 80)

	fmt.Println()
	fmt.Println(separator)
	fmt.Println("TRANSLATION RESULTS")
	fmt.Println(separator)
	fmt.Printf("\nSource Language: %s\n", *sourceLang)
	fmt.Printf("Target Language: %s\n", *targetLang)
	fmt.Printf("Translation Time: %.2f seconds\n", duration.Seconds())
	fmt.Println()
	fmt.Println(dashLine)
	fmt.Println("ORIGINAL TEXT:")
	fmt.Println(dashLine)
	fmt.Println(textToTranslate)
	fmt.Println()
	fmt.Println(dashLine)
	fmt.Println("TRANSLATED TEXT:")
	fmt.Println(dashLine)
	fmt.Println(result.TranslatedText)
	fmt.Println()
	fmt.Println(separator)

	logger.WithFields(logrus.Fields{
		"duration_seconds": duration.Seconds(),
	}).Info("Translation completed successfully")
}

func printLanguages(logger *logrus.Logger, client *http.Client, serverAddr string) {
	resp, err := client.Get(serverAddr + "/languages")
	if err != nil {
		logger.WithError(err).Fatal("Request failed")
	}
	defer resp.Body.Close()

	var langs []languageEntry
	if err := json.NewDecoder(resp.Body).Decode(&langs); err != nil {
		logger.WithError(err).Fatal("Failed to decode languages response")
	}

	fmt.Println("Supported languages:")
	for _, l := range langs {
		fmt.Printf("  %-4s %s\n", l.Code, l.Name)
	}
}
