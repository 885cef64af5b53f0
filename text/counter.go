// Copyright 2014 Prometheus Team
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"fmt"
	"io"
	"strings"
)

// LabelPair is a single label name and value attached to a sample.
type LabelPair struct {
	Name  string
	Value string
}

// Opts bundles the options for creating a Counter. Only Name is required for
// the output to be meaningful, but nothing is checked at construction time.
type Opts struct {
	// Name is the metric name as it appears in every line of the output,
	// e.g. "http_requests_total".
	Name string

	// Type is written verbatim into the TYPE line, e.g. "counter".
	Type string

	// Help is written verbatim into the HELP line.
	Help string

	// EscapeText enables escaping of label values and help text as
	// required by the text format. Without it, both are written exactly
	// as given and the caller must make sure they contain no characters
	// that need escaping.
	EscapeText bool
}

// Counter renders the header and samples of one metric in the text
// exposition format. Name, type and help are fixed at construction. Labels
// may be changed freely between renders; they are written in slice order,
// including duplicates.
//
// A Counter is not safe for concurrent use. Rendering never modifies it.
type Counter struct {
	name       string
	metricType string
	help       string
	escape     bool

	Labels []LabelPair
}

// NewCounter creates a Counter with the given name, type and help text and no
// labels. Label values and help text are not escaped.
func NewCounter(name, metricType, help string) *Counter {
	return New(Opts{Name: name, Type: metricType, Help: help})
}

// New creates a Counter from the provided Opts.
func New(opts Opts) *Counter {
	return &Counter{
		name:       opts.Name,
		metricType: opts.Type,
		help:       opts.Help,
		escape:     opts.EscapeText,
	}
}

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Type returns the metric type as passed at construction.
func (c *Counter) Type() string { return c.metricType }

// Help returns the help text as passed at construction.
func (c *Counter) Help() string { return c.help }

// AddLabel appends a label pair. An existing pair with the same name is kept.
func (c *Counter) AddLabel(name, value string) {
	c.Labels = append(c.Labels, LabelPair{Name: name, Value: value})
}

// SetLabel sets the value of the first label called name, or appends a new
// pair if there is none.
func (c *Counter) SetLabel(name, value string) {
	for i := range c.Labels {
		if c.Labels[i].Name == name {
			c.Labels[i].Value = value
			return
		}
	}
	c.AddLabel(name, value)
}

// LabelPairs returns a copy of the current labels.
func (c *Counter) LabelPairs() []LabelPair {
	if c.Labels == nil {
		return nil
	}
	return append([]LabelPair(nil), c.Labels...)
}

// Header returns the HELP and TYPE lines, each terminated by a newline.
func (c *Counter) Header() string {
	var b strings.Builder
	c.WriteHeader(&b)
	return b.String()
}

// Sample returns a single sample line for value, formatted with the %v verb.
// Any integer, float, string or fmt.Stringer is accepted. The value is not
// checked to be numeric.
func (c *Counter) Sample(value interface{}) string {
	var b strings.Builder
	c.WriteSample(&b, value)
	return b.String()
}

// Render returns the header followed by one sample line per value, all with
// the current labels.
func (c *Counter) Render(values ...interface{}) string {
	var b strings.Builder
	c.WriteHeader(&b)
	for _, v := range values {
		c.WriteSample(&b, v)
	}
	return b.String()
}

// WriteHeader writes the HELP and TYPE lines to out. It returns the number of
// bytes written and any error encountered.
func (c *Counter) WriteHeader(out io.Writer) (int, error) {
	help := c.help
	if c.escape {
		help = EscapeHelp(help)
	}
	var written int
	n, err := fmt.Fprintf(out, "# HELP %s %s\n", c.name, help)
	written += n
	if err != nil {
		return written, err
	}
	n, err = fmt.Fprintf(out, "# TYPE %s %s\n", c.name, c.metricType)
	written += n
	return written, err
}

// WriteSample writes a single sample line for value to out. It returns the
// number of bytes written and any error encountered.
func (c *Counter) WriteSample(out io.Writer, value interface{}) (int, error) {
	var written int
	n, err := io.WriteString(out, c.name)
	written += n
	if err != nil {
		return written, err
	}
	n, err = c.writeLabels(out)
	written += n
	if err != nil {
		return written, err
	}
	n, err = fmt.Fprintf(out, " %v\n", value)
	written += n
	return written, err
}

// writeLabels writes the labels enclosed in '{...}'. Nothing is written if
// there are no labels.
func (c *Counter) writeLabels(out io.Writer) (int, error) {
	if len(c.Labels) == 0 {
		return 0, nil
	}
	var written int
	separator := '{'
	for _, lp := range c.Labels {
		value := lp.Value
		if c.escape {
			value = EscapeLabelValue(value)
		}
		n, err := fmt.Fprintf(out, `%c%s="%s"`, separator, lp.Name, value)
		written += n
		if err != nil {
			return written, err
		}
		separator = ','
	}
	n, err := out.Write([]byte{'}'})
	written += n
	return written, err
}
