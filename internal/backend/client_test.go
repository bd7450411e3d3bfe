package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTranscriptFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/jobs/job-1/transcript" {
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"job_id": "job-1",
			"segments": [
				{"id": 2, "segment_index": 1, "start_time": 5.0, "end_time": 9.5, "text": "Skolan har många elever"},
				{"id": 1, "segment_index": 0, "start_time": 0.0, "end_time": 4.8, "text": "Vi pratar om skolan"}
			],
			"metadata": {"total_duration": 9.5, "speaker_count": 0, "word_count": 8, "segment_count": 2}
		}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 5*time.Second)
	tr, err := c.Transcript(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if tr.JobID != "job-1" {
		t.Errorf("JobID = %q, want %q", tr.JobID, "job-1")
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(tr.Segments))
	}
	if tr.Segments[0].Index != 0 {
		t.Errorf("segments not sorted: first index = %d", tr.Segments[0].Index)
	}
	if tr.Metadata.SegmentCount != 2 {
		t.Errorf("SegmentCount = %d, want 2", tr.Metadata.SegmentCount)
	}
}

func TestTranscriptNotReady(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Transkriptet är inte klart. Status: processing"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 5*time.Second)
	_, err := c.Transcript(context.Background(), "job-1")
	if err == nil {
		t.Fatal("expected error for incomplete job")
	}
	if !strings.Contains(err.Error(), "Transkriptet är inte klart") {
		t.Errorf("error %q should carry the backend detail", err)
	}
}

func TestTranscriptNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 5*time.Second)
	_, err := c.Transcript(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing job")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q should mention the status code", err)
	}
}
