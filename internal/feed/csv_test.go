package feed

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const sampleFeed = `timestamp,visitorsIn,visitorsOut,menIn,menOut,womenIn,womenOut,groupIn,groupOut,passersby
timestamp,visitorsIn,visitorsOut,menIn,menOut,womenIn,womenOut,groupIn,groupOut,passersby
15/01/2024 08:00,10,8,6,4,5,4,2,1,50
15/01/2024 09:00,20,15,11,8,10,7,4,3,60
`

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Both header lines are skipped, leaving the two data rows.
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Timestamp.Hour() != 8 || first.Timestamp.Day() != 15 {
		t.Errorf("timestamp parsed wrong: %v", first.Timestamp)
	}
	if first.VisitorsIn != 10 || first.Passersby != 50 {
		t.Errorf("counts parsed wrong: %+v", first)
	}
	if first.RawMenIn != 6 || first.RawWomenIn != 5 {
		t.Errorf("raw gender split parsed wrong: %+v", first)
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	input := sampleFeed +
		"not-a-date,1,1,1,1,1,1,1,1,1\n" +
		"16/01/2024 08:00,x,1,1,1,1,1,1,1,1\n" +
		"16/01/2024 09:00,5,4,3,2,2,2,1,0,20\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse must not fail on bad rows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 valid rows, got %d", len(rows))
	}
}

func TestParse_RejectsNegativeCounts(t *testing.T) {
	input := sampleFeed + "16/01/2024 08:00,-5,1,1,1,1,1,1,1,1\n"
	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("negative-count row must be dropped, got %d rows", len(rows))
	}
}

func TestParse_TolerantOfTrailingColumns(t *testing.T) {
	input := sampleFeed + "16/01/2024 08:00,5,4,3,2,2,2,1,0,20,extra,vendor\n"
	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("row with trailing vendor columns must parse, got %d rows", len(rows))
	}
}

func TestParse_EmptyFeed(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed on empty input: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.csv")
	if err := os.WriteFile(path, []byte(sampleFeed), 0o600); err != nil {
		t.Fatal(err)
	}

	rows, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(rows))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.csv")
	if err := os.WriteFile(path, []byte(sampleFeed), 0o600); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	fired := 0
	w, err := NewWatcher(path, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(sampleFeed+"16/01/2024 08:00,5,4,3,2,2,2,1,0,20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := fired
		mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("watcher did not fire within deadline")
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.csv")
	if err := os.WriteFile(path, []byte(sampleFeed), 0o600); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	fired := 0
	w, err := NewWatcher(path, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if fired != 0 {
		t.Errorf("watcher fired %d times for an unrelated file", fired)
	}
}
