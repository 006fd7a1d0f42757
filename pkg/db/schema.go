package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per extraction over an articles file
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    input_path TEXT NOT NULL,
    input_hash TEXT NOT NULL,      -- sha256 of the articles file
    policy TEXT NOT NULL,          -- abort | skip
    article_count INTEGER NOT NULL,
    processed_count INTEGER DEFAULT 0,
    skipped_count INTEGER DEFAULT 0,
    record_count INTEGER DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'running', -- running | completed | aborted
    output_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_hash ON runs(input_hash);

-- Records: the model record table of a run, in extraction order
CREATE TABLE IF NOT EXISTS records (
    record_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    citation_key TEXT NOT NULL,
    model TEXT NOT NULL,
    equivalent_model TEXT,
    backbone TEXT,
    modality TEXT,
    dataset TEXT,
    task TEXT,
    application TEXT,
    board TEXT,
    implementation TEXT,
    publication_year INTEGER,

    latency TEXT,
    fps TEXT,
    task_score TEXT,
    footprint TEXT,
    throughput TEXT,
    power_consumption TEXT,
    frequency TEXT,
    complexity TEXT,

    design TEXT,
    memory TEXT,
    precision TEXT,
    optimizations TEXT,      -- JSON array
    fpga_util TEXT,
    dpu_config TEXT,
    dpu_core TEXT,
    dpu_util TEXT,
    dpu_optimizations TEXT,  -- JSON array

    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);
CREATE INDEX IF NOT EXISTS idx_records_citation ON records(citation_key);
CREATE INDEX IF NOT EXISTS idx_records_board ON records(board);

-- Skips: articles that produced no records
CREATE TABLE IF NOT EXISTS skips (
    skip_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    citation_key TEXT NOT NULL,
    reason TEXT NOT NULL,
    message TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_skips_run ON skips(run_id);
`
