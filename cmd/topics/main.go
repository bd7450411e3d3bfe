package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"

	"github.com/Pluggentipsar/intervju-transkribering/internal/app"
	"github.com/Pluggentipsar/intervju-transkribering/internal/backend"
	"github.com/Pluggentipsar/intervju-transkribering/internal/config"
	"github.com/Pluggentipsar/intervju-transkribering/internal/store"
	"github.com/Pluggentipsar/intervju-transkribering/internal/topics"
	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

const version = "0.3.0"

func main() {
	log := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	cfg, err := config.Load()
	if err != nil {
		log.Error("load configuration", "err", err)
		os.Exit(1)
	}

	var (
		inputPath   string
		jobID       string
		dbPath      string
		backendURL  string
		fromBackend bool
		sensRaw     string
		fieldRaw    string
		cloud       bool
		cloudSize   int
		asJSON      bool
		browse      bool
		save        bool
		showVersion bool
	)

	flag.StringVar(&inputPath, "input", "", "Transcript JSON export to analyze (-i)")
	flag.StringVar(&inputPath, "i", "", "Transcript JSON export to analyze")
	flag.StringVar(&jobID, "job", "", "Job ID to load from the database or backend")
	flag.StringVar(&dbPath, "db", cfg.DBPath, "SQLite database path")
	flag.StringVar(&backendURL, "backend", cfg.BackendURL, "Backend base URL")
	flag.BoolVar(&fromBackend, "fetch", false, "Fetch the job's transcript from the backend instead of the database")
	flag.StringVar(&sensRaw, "sensitivity", cfg.Sensitivity, "Segmentation sensitivity: low|medium|high")
	flag.StringVar(&fieldRaw, "field", cfg.TextField, "Text field: original|anonymized")
	flag.BoolVar(&cloud, "cloud", false, "Print the word cloud instead of topic sections")
	flag.IntVar(&cloudSize, "n", cfg.WordCloudSize, "Word cloud size (25, 50 or 100)")
	flag.BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	flag.BoolVar(&browse, "browse", false, "Open the interactive topic browser")
	flag.BoolVar(&save, "save", false, "Persist computed results to the database")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	sensitivity, err := topics.ParseSensitivity(sensRaw)
	if err != nil {
		log.Error("invalid sensitivity", "err", err)
		os.Exit(2)
	}
	field := transcript.FieldOriginal
	if strings.EqualFold(fieldRaw, string(transcript.FieldAnonymized)) {
		field = transcript.FieldAnonymized
	}

	segments, jobID, err := loadSegments(log, inputPath, jobID, dbPath, backendURL, fromBackend, cfg)
	if err != nil {
		log.Error("load transcript", "err", err)
		os.Exit(1)
	}
	log.Info("transcript loaded", "segments", len(segments), "job", jobID)

	if browse {
		m := app.New(segments, field, sensitivity)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Error("browser failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if cloud {
		rows := topics.WordCloud(segments, field, cloudSize)
		if save && jobID != "" {
			if err := persistCloud(dbPath, jobID, rows); err != nil {
				log.Error("save word cloud", "err", err)
				os.Exit(1)
			}
			log.Info("word cloud saved", "job", jobID, "words", len(rows))
		}
		printCloud(rows, asJSON)
		return
	}

	sections := topics.Sections(segments, field, sensitivity)
	if save && jobID != "" {
		if err := persistSections(dbPath, jobID, sensitivity, sections); err != nil {
			log.Error("save sections", "err", err)
			os.Exit(1)
		}
		log.Info("sections saved", "job", jobID, "sections", len(sections))
	}
	printSections(sections, asJSON)
}

// loadSegments resolves the transcript source: a JSON export on disk, the
// local database, or the backend API.
func loadSegments(log *charmlog.Logger, inputPath, jobID, dbPath, backendURL string, fromBackend bool, cfg *config.Config) ([]transcript.Segment, string, error) {
	switch {
	case inputPath != "":
		tr, err := transcript.LoadFile(inputPath)
		if err != nil {
			return nil, "", err
		}
		return tr.Segments, tr.JobID, nil

	case jobID != "" && fromBackend:
		log.Info("fetching transcript", "backend", backendURL, "job", jobID)
		client := backend.NewClient(backendURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
		defer cancel()
		tr, err := client.Transcript(ctx, jobID)
		if err != nil {
			return nil, "", err
		}
		return tr.Segments, tr.JobID, nil

	case jobID != "":
		s, err := store.Open(dbPath)
		if err != nil {
			return nil, "", err
		}
		defer s.Close()
		segments, err := s.SegmentsForJob(jobID)
		if err != nil {
			return nil, "", err
		}
		if len(segments) == 0 {
			return nil, "", fmt.Errorf("no segments stored for job %q", jobID)
		}
		return segments, jobID, nil

	default:
		return nil, "", fmt.Errorf("missing transcript source: use -input or -job")
	}
}

func persistSections(dbPath, jobID string, sensitivity topics.Sensitivity, sections []topics.Section) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.SaveSections(jobID, sensitivity, sections)
}

func persistCloud(dbPath, jobID string, rows []topics.WordCount) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.SaveWordCloud(jobID, rows)
}

func printSections(sections []topics.Section, asJSON bool) {
	if asJSON {
		json.NewEncoder(os.Stdout).Encode(sections)
		return
	}
	for _, sec := range sections {
		fmt.Printf("%2d  %s–%s  [%d segment]  %s\n",
			sec.ID+1, formatTime(sec.StartTime), formatTime(sec.EndTime),
			sec.SegmentCount, strings.Join(sec.Keywords, ", "))
		fmt.Printf("    %s\n", sec.Summary)
	}
}

func printCloud(rows []topics.WordCount, asJSON bool) {
	if asJSON {
		json.NewEncoder(os.Stdout).Encode(rows)
		return
	}
	for _, row := range rows {
		fmt.Printf("%5d  %s\n", row.Count, row.Word)
	}
}

func formatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
