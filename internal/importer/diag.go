package importer

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Diag collects human-readable diagnostic lines during one import run. It is
// passed explicitly through the parse chain instead of intercepting process
// output, and optionally mirrors every line to a logger.
type Diag struct {
	logger logrus.FieldLogger
	lines  []string
}

// NewDiag returns a collector mirroring lines to the given logger. A nil
// logger disables mirroring.
func NewDiag(logger logrus.FieldLogger) *Diag {
	return &Diag{logger: logger}
}

// Addf records one formatted diagnostic line.
func (d *Diag) Addf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	d.lines = append(d.lines, line)
	if d.logger != nil {
		d.logger.Debug(line)
	}
}

// Lines returns the recorded lines in insertion order.
func (d *Diag) Lines() []string {
	return d.lines
}
