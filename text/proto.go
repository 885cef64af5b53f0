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

	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// MetricFamily converts the current state of the Counter and the given value
// into a MetricFamily proto message holding a single metric. Labels keep their
// order. Only the single-value types counter, gauge, and untyped can be
// converted; the type is matched case-insensitively.
//
// Help text and label values are copied unescaped, since encoders of the
// proto message do their own escaping.
func (c *Counter) MetricFamily(value float64) (*dto.MetricFamily, error) {
	if c.name == "" {
		return nil, fmt.Errorf("counter has no name")
	}
	metricType, ok := dto.MetricType_value[strings.ToUpper(c.metricType)]
	if !ok {
		return nil, fmt.Errorf("unknown metric type %q for %s", c.metricType, c.name)
	}

	metric := &dto.Metric{}
	for _, lp := range c.Labels {
		metric.Label = append(metric.Label, &dto.LabelPair{
			Name:  proto.String(lp.Name),
			Value: proto.String(lp.Value),
		})
	}
	switch dto.MetricType(metricType) {
	case dto.MetricType_COUNTER:
		metric.Counter = &dto.Counter{Value: proto.Float64(value)}
	case dto.MetricType_GAUGE:
		metric.Gauge = &dto.Gauge{Value: proto.Float64(value)}
	case dto.MetricType_UNTYPED:
		metric.Untyped = &dto.Untyped{Value: proto.Float64(value)}
	default:
		return nil, fmt.Errorf("metric type %q of %s has no single value", c.metricType, c.name)
	}

	return &dto.MetricFamily{
		Name:   proto.String(c.name),
		Help:   proto.String(c.help),
		Type:   dto.MetricType(metricType).Enum(),
		Metric: []*dto.Metric{metric},
	}, nil
}

// WriteProtoText writes the proto.Message to the writer in text format and
// returns the number of bytes written and any error encountered.
func WriteProtoText(w io.Writer, p proto.Message) (int, error) {
	b, err := prototext.MarshalOptions{Multiline: true}.Marshal(p)
	if err != nil {
		return 0, err
	}
	return fmt.Fprintf(w, "%s\n", b)
}

// WriteProtoCompactText writes the proto.Message to the writer in compact text
// format and returns the number of bytes written and any error encountered.
func WriteProtoCompactText(w io.Writer, p proto.Message) (int, error) {
	return fmt.Fprintf(w, "%s\n", prototext.MarshalOptions{}.Format(p))
}
