package automatic

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// Summary aggregates one batch log file.
type Summary struct {
	Attempts  int     `yaml:"attempts"`
	Solved    int     `yaml:"solved"`
	MeanMs    float64 `yaml:"mean_ms"`
	StdevMs   float64 `yaml:"stdev_ms"`
	MeanNodes float64 `yaml:"mean_nodes"`
	Pool      string  `yaml:"pool"`
}

func readLogFile(filepath string) (*Summary, []float64, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)

	// Record looks like:
	// thread,job,poolsize,solved,nodes,elapsed_us,pool

	summary := &Summary{}
	var elapsedMs, nodes []float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if record[0] == "thread" {
			// this is the header line
			continue
		}
		n, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, nil, err
		}
		us, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, nil, err
		}
		summary.Attempts++
		if record[3] == "true" {
			summary.Solved++
		}
		nodes = append(nodes, float64(n))
		elapsedMs = append(elapsedMs, float64(us)/1000.0)
		summary.Pool = record[6]
	}
	if summary.Attempts > 0 {
		summary.MeanMs = stat.Mean(elapsedMs, nil)
		summary.StdevMs = stat.StdDev(elapsedMs, nil)
		summary.MeanNodes = stat.Mean(nodes, nil)
	}
	return summary, elapsedMs, nil
}

// AnalyzeLogFile analyzes the given batch CSV file and spits out a
// bunch of statistics, including a histogram of solve times.
func AnalyzeLogFile(filepath string) (string, error) {
	summary, elapsedMs, err := readLogFile(filepath)
	if err != nil {
		return "", err
	}
	if summary.Attempts == 0 {
		return "", fmt.Errorf("no results in %v", filepath)
	}
	stats := fmt.Sprintf("Attempts: %d\n", summary.Attempts)
	stats += fmt.Sprintf("Solved: %d (%.3f%%)\n", summary.Solved,
		100.0*float64(summary.Solved)/float64(summary.Attempts))
	stats += fmt.Sprintf("Mean solve time: %.3f ms  Stdev: %.3f ms\n",
		summary.MeanMs, summary.StdevMs)
	stats += fmt.Sprintf("Mean search nodes: %.1f\n", summary.MeanNodes)

	hist := histogram.Hist(9, elapsedMs)
	var buf bytes.Buffer
	buf.WriteString("Solve time histogram (ms):\n")
	if err := histogram.Fprint(&buf, hist, histogram.Linear(40)); err != nil {
		return "", err
	}
	stats += buf.String()
	return stats, nil
}

// WriteSummary writes a yaml summary of a batch log file.
func WriteSummary(filepath, outfile string) error {
	summary, _, err := readLogFile(filepath)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(summary)
	if err != nil {
		return err
	}
	return os.WriteFile(outfile, out, 0644)
}
