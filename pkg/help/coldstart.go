package help

const ColdstartYAML = `# fse Quick Start

workflow:
  - "fse import --report zotero-report.html --output articles.yaml"
  - "fse screen --input articles.yaml"
  - "fse extract --input articles.yaml"
  - "fse summary"

policies:
  abort: "Stop at the first article that cannot be turned into records (default)"
  skip: "Record why the article was skipped and continue"

outputs:
  snapshot: "SQLite database, default $XDG_DATA_HOME/fse/all_datapoints_<timestamp>.db"
  export: "--output records.csv | records.json | records.yaml"
  dump: "-vvv prints the record table as YAML on stdout"

commands:
  extract_skip: |
    fse extract --input articles.yaml --policy skip

  extract_csv: |
    fse extract --input articles.yaml --output records.csv

  keep_excluded: |
    fse extract --input articles.yaml --no-screen

  list_runs: |
    fse runs --limit 10

  run_details: |
    fse run 5

  export_run: |
    fse records 5 --output records.json

tags:
  main: ["Board: ", "Implementation: ", "Modality: ", "Model: ", "Dataset: ", "Task: "]
  scoped: "Metric and design tags may start with (Model) to target one model of an article"
  model_format: "Model: Name (Equivalent) {Backbone}"
  task_format: "Task: Task (Application)"

config:
  path: "$XDG_CONFIG_HOME/fse/config.yaml"
  init: "fse config init"
  env: ["FSE_CONFIG", "FSE_DB", "FSE_POLICY", "FSE_VERBOSITY", "FSE_LOG_FORMAT", "FSE_INPUT"]
`
