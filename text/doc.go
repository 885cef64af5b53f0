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

// Package text renders metrics in version 0.0.4 of the text-based exchange
// format. A Counter holds the name, type, and help text of one metric plus an
// ordered list of labels, and renders them as
//
//	# HELP pippo_total Number of pippos
//	# TYPE pippo_total counter
//	pippo_total{food="chicken",instance="3"} 3
//
// The package does not check names or escape values unless asked to. Serving
// the output over HTTP, registering metrics, and keeping their values are left
// to the caller.
package text

// ContentType is the Content-Type to use for HTTP responses carrying the
// output of this package.
const ContentType = `text/plain; version=0.0.4; charset=utf-8`
