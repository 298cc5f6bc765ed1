/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

// IdentityMap maps primary keys to the single in-memory instance standing
// for that row. Entries are never evicted; they leave only through Remove or
// Clear. It is not safe for concurrent use.
type IdentityMap[K comparable, V any] struct {
	items map[K]V
}

func NewIdentityMap[K comparable, V any]() *IdentityMap[K, V] {
	return &IdentityMap[K, V]{items: make(map[K]V)}
}

func (m *IdentityMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

func (m *IdentityMap[K, V]) Put(key K, value V) {
	m.items[key] = value
}

// Remove reports whether key was present.
func (m *IdentityMap[K, V]) Remove(key K) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	return true
}

func (m *IdentityMap[K, V]) Clear() {
	m.items = make(map[K]V)
}

func (m *IdentityMap[K, V]) Len() int {
	return len(m.items)
}
