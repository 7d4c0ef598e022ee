package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mkrogh/kurv"
)

func TestAppRates(t *testing.T) {
	defer func(old string) { *ratesSpec = old }(*ratesSpec)

	*ratesSpec = ""
	rates, err := appRates()
	if err != nil {
		t.Fatalf("appRates: %v", err)
	}
	if rates["EUR"] != 7.44 {
		t.Errorf("default EUR rate = %v, want 7.44", rates["EUR"])
	}

	*ratesSpec = "DKK=1.0,SEK=0.65"
	rates, err = appRates()
	if err != nil {
		t.Fatalf("appRates: %v", err)
	}
	if rates["SEK"] != 0.65 {
		t.Errorf("SEK rate = %v, want 0.65", rates["SEK"])
	}

	*ratesSpec = "bogus"
	if _, err := appRates(); err == nil {
		t.Error("appRates accepted a malformed rate table")
	}
}

func TestOpenTracker(t *testing.T) {
	defer func(db, dir string) { *dbPath, *mirrorDir = db, dir }(*dbPath, *mirrorDir)
	*dbPath = filepath.Join(t.TempDir(), "kurv.db")
	*mirrorDir = t.TempDir()

	tracker, err := openTracker(context.Background())
	if err != nil {
		t.Fatalf("openTracker: %v", err)
	}
	if tracker.Source() != kurv.Seeded {
		t.Errorf("fresh tracker Source = %v, want Seeded", tracker.Source())
	}
	if len(tracker.Records()) != 3 {
		t.Errorf("fresh tracker holds %d records, want 3", len(tracker.Records()))
	}
}
