package logmodule

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool   { return true }

// StatsReporter writes tally metrics to the log. Counters are deltas of the
// last reporting interval, zero deltas are skipped.
type StatsReporter struct {
	entry *log.Entry
}

func NewStatsReporter(prefix string) *StatsReporter {
	return &StatsReporter{entry: log.WithField("prefix", prefix)}
}

func (r *StatsReporter) fields(name string, tags map[string]string) *log.Entry {
	e := r.entry.WithField("metric", name)
	for k, v := range tags {
		e = e.WithField(k, v)
	}
	return e
}

func (r *StatsReporter) ReportCounter(name string, tags map[string]string, value int64) {
	if value == 0 {
		return
	}
	r.fields(name, tags).WithField("value", value).Info("counter")
}

func (r *StatsReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.fields(name, tags).WithField("value", value).Info("gauge")
}

func (r *StatsReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.fields(name, tags).WithField("value", interval).Info("timer")
}

func (r *StatsReporter) ReportHistogramValueSamples(name string, tags map[string]string, _ tally.Buckets, lower, upper float64, samples int64) {
	r.fields(name, tags).WithFields(log.Fields{
		"lower":   lower,
		"upper":   upper,
		"samples": samples,
	}).Info("histogram")
}

func (r *StatsReporter) ReportHistogramDurationSamples(name string, tags map[string]string, _ tally.Buckets, lower, upper time.Duration, samples int64) {
	r.fields(name, tags).WithFields(log.Fields{
		"lower":   lower,
		"upper":   upper,
		"samples": samples,
	}).Info("histogram")
}

func (r *StatsReporter) Capabilities() tally.Capabilities {
	return capabilities{}
}

func (r *StatsReporter) Flush() {}
