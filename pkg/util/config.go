// Copyright 2024-2025 daviszhen
//
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

package util

import (
	"github.com/BurntSushi/toml"
)

type CheckData struct {
	Path   string `tag:"path"`
	Format string `tag:"format"`
}

type CheckKeys struct {
	// file column indices of the sort keys, precedence order
	Columns []string `tag:"columns"`
	// key type spec like "int varchar:desc decimal(18,2)"
	Types     string `tag:"types"`
	NullOrder string `tag:"nullOrder"`
}

type DebugOptions struct {
	PrintRows   bool `tag:"printRows"`
	Concurrency int  `tag:"concurrency"`
}

type Config struct {
	Data  CheckData    `tag:"data"`
	Keys  CheckKeys    `tag:"keys"`
	Debug DebugOptions `tag:"debug"`
}

// LoadConfig decodes a toml config file.
func LoadConfig(fpath string, cfg *Config) error {
	_, err := toml.DecodeFile(fpath, cfg)
	return err
}
