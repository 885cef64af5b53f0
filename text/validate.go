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
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/prometheus/common/model"
)

// ValidationError describes one way in which a Counter would produce output
// that is not valid in the text exposition format.
type ValidationError struct {
	// Field is one of "name", "type", "help", or "label".
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

var validTypes = map[string]struct{}{
	"counter":   {},
	"gauge":     {},
	"histogram": {},
	"summary":   {},
	"untyped":   {},
}

// Validate checks the Counter against the naming and quoting rules of the text
// format. It returns nil if the output of Header and Sample is well-formed,
// and otherwise all problems found, joined. Each of them is a
// *ValidationError. Rendering does not depend on Validate having been called.
func (c *Counter) Validate() error {
	var errs []error
	invalid := func(field, value, reason string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Reason: reason})
	}

	if !model.IsValidMetricName(model.LabelValue(c.name)) {
		invalid("name", c.name, "not a valid metric name")
	}
	if _, ok := validTypes[c.metricType]; !ok {
		invalid("type", c.metricType, "unknown metric type")
	}
	if !utf8.ValidString(c.help) {
		invalid("help", c.help, "not valid UTF-8")
	} else if !c.escape && strings.ContainsRune(c.help, '\n') {
		invalid("help", c.help, "contains a new line and escaping is disabled")
	}

	seen := make(map[string]struct{}, len(c.Labels))
	for _, lp := range c.Labels {
		switch {
		case !model.LabelName(lp.Name).IsValid():
			invalid("label", lp.Name, "not a valid label name")
		case strings.HasPrefix(lp.Name, model.ReservedLabelPrefix):
			invalid("label", lp.Name, "label names starting with \"__\" are reserved")
		}
		if _, dup := seen[lp.Name]; dup {
			invalid("label", lp.Name, "duplicate label name")
		}
		seen[lp.Name] = struct{}{}

		switch {
		case !utf8.ValidString(lp.Value):
			invalid("label", lp.Value, "value is not valid UTF-8")
		case !c.escape && strings.ContainsAny(lp.Value, "\\\"\n"):
			invalid("label", lp.Value, "value needs escaping and escaping is disabled")
		}
	}
	return errors.Join(errs...)
}
