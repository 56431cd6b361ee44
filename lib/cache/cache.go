/*
 * Copyright 2026 The EIT Toolkit Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cache persists a compiled lexicon (word -> rarity) so it can be
// reloaded without parsing the source spreadsheet again.
package cache

import "errors"

type Type string

const (
	File          Type = "file"
	Redis         Type = "redis"
	Elasticsearch Type = "elasticsearch"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("lexicon cache not found")

// Entry is the persisted form of one lexicon row.
type Entry struct {
	Word   string  `json:"word" codec:"word"`
	Rarity float64 `json:"rarity" codec:"rarity"`
}

type Client interface {
	// Save replaces whatever is stored with entries.
	Save(entries map[string]float64) error
	Load() (map[string]float64, error)
	Exists() bool
}
