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

// Package log sets up the module-wide logger, a thin wrapper around
// go-logging so every package gets the same backend and format without
// repeating the setup.
package log

import (
	"os"

	"github.com/op/go-logging"
)

// Log is the shared logger instance used throughout the module.
var Log = logging.MustGetLogger("corvid")

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{shortfunc} > %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// SetLevel changes the minimum severity of messages that get logged.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
