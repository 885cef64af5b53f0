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
	"github.com/cespare/xxhash/v2"
)

// SeparatorByte is a byte that cannot occur in valid UTF-8 sequences and is
// used to separate label names and values when hashing.
const SeparatorByte byte = 255

// cache the signature of an empty label set.
var emptyLabelSignature = xxhash.New().Sum64()

// Signature returns a fingerprint of the current labels. Unlike the label
// signatures of a registry, it depends on label order, matching the output of
// Sample.
func (c *Counter) Signature() uint64 {
	return LabelPairsToSignature(c.Labels)
}

// LabelPairsToSignature returns a fingerprint of the given label sequence.
func LabelPairsToSignature(labels []LabelPair) uint64 {
	if len(labels) == 0 {
		return emptyLabelSignature
	}

	h := xxhash.New()
	for _, lp := range labels {
		h.WriteString(lp.Name)
		h.Write([]byte{SeparatorByte})
		h.WriteString(lp.Value)
		h.Write([]byte{SeparatorByte})
	}
	return h.Sum64()
}
