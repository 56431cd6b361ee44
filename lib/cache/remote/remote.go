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

package remote

type Client interface {
	NewSetPipeline(size int) SetPipeline
	// Scan calls onEntry for every stored word.
	Scan(onEntry func(word string, rarity float64) error) error
	// Clear drops everything stored so far.
	Clear() error
	Exists() bool
	Ready() bool
}

type Pipeline interface {
	Size() int
}

type SetPipeline interface {
	Set(word string, rarity float64)
	ExecSet() error
	Pipeline
}
