// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mlcheck reports how the library runs on this machine and checks
// that the scalar and simd implementations agree.
//
//	mlcheck info
//	mlcheck crosscheck --trials 10000 --seed 3
//	mlcheck crosscheck --config crosscheck.yaml --format yaml
package main

import (
	"log"
	"os"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mlcheck: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
