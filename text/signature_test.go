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
	"testing"
)

func TestSignature(t *testing.T) {
	a := NewCounter("m", "counter", "")
	a.AddLabel("food", "chicken")
	a.AddLabel("instance", "3")

	b := NewCounter("other", "gauge", "different help")
	b.AddLabel("food", "chicken")
	b.AddLabel("instance", "3")

	if a.Signature() != b.Signature() {
		t.Error("expected equal signatures for equal label sequences")
	}

	b.Labels[0], b.Labels[1] = b.Labels[1], b.Labels[0]
	if a.Signature() == b.Signature() {
		t.Error("expected signatures to depend on label order")
	}

	b.Labels = []LabelPair{{"foodi", "nstance"}, {"3", ""}}
	if a.Signature() == b.Signature() {
		t.Error("expected signatures to separate names from values")
	}

	before := a.Signature()
	a.SetLabel("instance", "4")
	if a.Signature() == before {
		t.Error("expected signature to change with a label value")
	}
}

func TestEmptyLabelPairsSignature(t *testing.T) {
	if got := NewCounter("m", "counter", "").Signature(); got != emptyLabelSignature {
		t.Errorf("expected %d, got %d", emptyLabelSignature, got)
	}
	if got := LabelPairsToSignature([]LabelPair{}); got != emptyLabelSignature {
		t.Errorf("expected %d, got %d", emptyLabelSignature, got)
	}
}

func BenchmarkLabelPairsToSignature(b *testing.B) {
	labels := []LabelPair{{"food", "chicken"}, {"instance", "3"}}
	for i := 0; i < b.N; i++ {
		LabelPairsToSignature(labels)
	}
}
