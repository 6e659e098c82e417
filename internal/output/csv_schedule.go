package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/osaptools/osap/internal/domain"
)

// CSVScheduleExporter writes the recommended tier's amortization schedule,
// one row per month. Falls back to the first tier that simulated cleanly.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "csv" }

func (c CSVScheduleExporter) Format(report *domain.AnalysisReport) ([]byte, error) {
	result := scheduleSource(&report.Scenarios)
	if result == nil {
		return nil, fmt.Errorf("no scenario produced a schedule to export")
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "FederalBalance", "ProvincialBalance", "TotalBalance", "Interest", "Principal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range result.Schedule {
		record := []string{
			strconv.Itoa(row.Month),
			row.FederalBalance.StringFixed(2),
			row.ProvincialBalance.StringFixed(2),
			row.TotalBalance.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Principal.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scheduleSource(sa *domain.ScenarioAnalysis) *domain.PayoffResult {
	if o := sa.Outcome(domain.TierRecommended); o != nil && o.Result != nil {
		return o.Result
	}
	for i := range sa.Outcomes {
		if sa.Outcomes[i].Result != nil {
			return sa.Outcomes[i].Result
		}
	}
	return nil
}
