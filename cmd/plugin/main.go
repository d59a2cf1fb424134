// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command plugin is the engine shared library. Build it with
//
//	go build -buildmode=c-shared -o libcorvid.so ./cmd/plugin
//
// and load the resulting library from a host through the vtable
// documented in pkg/abi.
package main

import _ "github.com/corvidchess/corvid/pkg/abi"

func main() {}
