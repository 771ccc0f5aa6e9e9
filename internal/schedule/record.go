package schedule

// Record is one brokerage's fee-schedule file as published by the exchange.
// Field names follow the source JSON, including its spelling.
type Record struct {
	Name               string           `json:"Name"`
	Logo               string           `json:"Logo"`
	Comment            string           `json:"Comment"`
	ExceptionalMessage string           `json:"ExceptionalMessage"`
	Exceptional        bool             `json:"Exceptional"`
	Commissions        *CommissionTable `json:"CommisionTaarifon"`
	Averages           *AverageTable    `json:"CommisionAverage,omitempty"`
}

// CommissionTable is the free-text commission table.
type CommissionTable struct {
	DateUpdate  string          `json:"DateUpdate"`
	Comment     *string         `json:"Comment"`
	TableRow    []CommissionRow `json:"TableRow"`
	TableHeader []string        `json:"TableHeader"`
}

// CommissionRow is a labelled row of free-text cells. Cells may be null.
type CommissionRow struct {
	HasNoService int       `json:"HasNoService"`
	DescHeb      string    `json:"DescHeb"`
	Cols         []*string `json:"Cols"`
}

// AverageTable is the tiered table keyed by portfolio-size bands.
type AverageTable struct {
	TableHeader []string    `json:"TableHeader"`
	TableValue  [][]*string `json:"TableValue"`
}

// cell returns the i-th cell as text; missing and null cells are empty.
func cell(cols []*string, i int) string {
	if i < 0 || i >= len(cols) || cols[i] == nil {
		return ""
	}
	return *cols[i]
}
