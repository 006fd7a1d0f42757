package db

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dtnitsch/fpga-survey-extractor/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// Every pooled connection would get its own empty in-memory database
	database.SetMaxOpenConns(1)

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleRecords() []models.ModelRecord {
	return []models.ModelRecord{
		{
			CitationKey:      "a2021",
			Model:            "YOLOv3",
			EquivalentModel:  "YOLO",
			Backbone:         "Darknet-53",
			Modality:         "Optical",
			Dataset:          "DOTAv1.0",
			Board:            "ZCU102",
			Implementation:   "Vitis AI",
			PublicationYear:  2021,
			Latency:          "12 ms",
			Optimizations:    []string{"Quantization", "Pruning"},
			DPUOptimizations: []string{},
		},
		{
			CitationKey:      "a2021",
			Model:            "SSD",
			Board:            "ZCU102",
			PublicationYear:  2021,
			Optimizations:    []string{},
			DPUOptimizations: []string{"Softmax in PL"},
		},
	}
}

func TestCreateAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("articles.yaml", "abc123", "skip", 3)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}
	if runID <= 0 {
		t.Fatalf("CreateRun() runID = %d, want > 0", runID)
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.InputPath != "articles.yaml" || run.InputHash != "abc123" || run.Policy != "skip" {
		t.Errorf("run = %+v", run)
	}
	if run.ArticleCount != 3 {
		t.Errorf("ArticleCount = %d, want 3", run.ArticleCount)
	}
	if run.Status != RunRunning {
		t.Errorf("Status = %q, want %q", run.Status, RunRunning)
	}
	if run.OutputPath.Valid {
		t.Errorf("OutputPath = %v, want NULL", run.OutputPath)
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(42); err == nil {
		t.Error("GetRunByID() error = nil, want error")
	}
}

func TestFinishRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("articles.yaml", "abc123", "abort", 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.FinishRun(runID, RunCompleted, 2, 0, 5, "out/all_datapoints.db"); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatal(err)
	}
	if run.Status != RunCompleted || run.ProcessedCount != 2 || run.RecordCount != 5 {
		t.Errorf("run = %+v", run)
	}
	if !run.OutputPath.Valid || run.OutputPath.String != "out/all_datapoints.db" {
		t.Errorf("OutputPath = %v", run.OutputPath)
	}
}

func TestInsertAndGetRecords(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("articles.yaml", "abc123", "abort", 1)
	if err != nil {
		t.Fatal(err)
	}

	records := sampleRecords()
	if err := db.InsertRecords(runID, records); err != nil {
		t.Fatalf("InsertRecords() error = %v", err)
	}

	got, err := db.GetRunRecords(runID)
	if err != nil {
		t.Fatalf("GetRunRecords() error = %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("GetRunRecords() = %+v\nwant %+v", got, records)
	}
}

func TestInsertRecords_NilListsReadBackEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("articles.yaml", "abc123", "abort", 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.InsertRecords(runID, []models.ModelRecord{{CitationKey: "a", Model: "CNN"}}); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetRunRecords(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Optimizations == nil || len(got[0].Optimizations) != 0 {
		t.Errorf("Optimizations = %#v, want empty slice", got[0].Optimizations)
	}
}

func TestRecordsAreScopedToRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first, _ := db.CreateRun("a.yaml", "h1", "abort", 1)
	second, _ := db.CreateRun("b.yaml", "h2", "abort", 1)

	if err := db.InsertRecords(first, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetRunRecords(second)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("len(GetRunRecords(second)) = %d, want 0", len(got))
	}
}

func TestSkips(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, _ := db.CreateRun("articles.yaml", "abc123", "skip", 2)
	if err := db.InsertSkip(runID, "b2022", "validation", "no board"); err != nil {
		t.Fatalf("InsertSkip() error = %v", err)
	}
	if err := db.InsertSkip(runID, "c2023", "format", "missing braces"); err != nil {
		t.Fatal(err)
	}

	skips, err := db.GetRunSkips(runID)
	if err != nil {
		t.Fatalf("GetRunSkips() error = %v", err)
	}
	want := []Skip{
		{CitationKey: "b2022", Reason: "validation", Message: "no board"},
		{CitationKey: "c2023", Reason: "format", Message: "missing braces"},
	}
	if !reflect.DeepEqual(skips, want) {
		t.Errorf("GetRunSkips() = %+v, want %+v", skips, want)
	}
}

func TestListRunsAndLatest(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetLatestRunID(); err == nil {
		t.Error("GetLatestRunID() on empty db error = nil, want error")
	}

	var ids []int64
	for _, p := range []string{"a.yaml", "b.yaml", "c.yaml"} {
		id, err := db.CreateRun(p, "h", "abort", 1)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	latest, err := db.GetLatestRunID()
	if err != nil {
		t.Fatalf("GetLatestRunID() error = %v", err)
	}
	if latest != ids[2] {
		t.Errorf("GetLatestRunID() = %d, want %d", latest, ids[2])
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"no limit", 0, 3},
		{"limit 2", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := db.ListRuns(tt.limit)
			if err != nil {
				t.Fatalf("ListRuns() error = %v", err)
			}
			if len(runs) != tt.want {
				t.Fatalf("len(runs) = %d, want %d", len(runs), tt.want)
			}
			if runs[0].RunID != ids[2] {
				t.Errorf("runs[0].RunID = %d, want most recent %d", runs[0].RunID, ids[2])
			}
		})
	}
}

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fse.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}
	if _, err := db.CreateRun("a.yaml", "h", "abort", 0); err != nil {
		t.Errorf("CreateRun() after Open error = %v", err)
	}
}
