/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package nth

import (
	"cmp"

	"github.com/nthitem/nthitem-go/common"
)

// MaxWithIndex returns the largest item and the index of its first occurrence.
func MaxWithIndex[T cmp.Ordered](source []T) (common.ItemWithIndex[T], error) {
	return MaxWithIndexFunc[T](common.Slice[T](source), cmp.Compare[T])
}

// MinWithIndex returns the smallest item and the index of its first occurrence.
func MinWithIndex[T cmp.Ordered](source []T) (common.ItemWithIndex[T], error) {
	return MinWithIndexFunc[T](common.Slice[T](source), cmp.Compare[T])
}

// MaxWithIndexFunc is MaxWithIndex with the order given by compare.
func MaxWithIndexFunc[T any](source common.Sequence[T], compare common.CompareFn[T]) (common.ItemWithIndex[T], error) {
	return scanWithIndex(source, func(candidate, best T) bool {
		return compare(candidate, best) > 0
	})
}

// MinWithIndexFunc is MinWithIndex with the order given by compare.
func MinWithIndexFunc[T any](source common.Sequence[T], compare common.CompareFn[T]) (common.ItemWithIndex[T], error) {
	return scanWithIndex(source, func(candidate, best T) bool {
		return compare(candidate, best) < 0
	})
}

// scanWithIndex replaces the running best only on a strict improvement, so
// ties keep the earliest index.
func scanWithIndex[T any](source common.Sequence[T], improves func(candidate, best T) bool) (common.ItemWithIndex[T], error) {
	length := source.Len()
	if length == 0 {
		return common.ItemWithIndex[T]{}, ErrEmptySequence
	}
	best := source.At(0)
	index := 0
	for i := 1; i < length; i++ {
		if item := source.At(i); improves(item, best) {
			best = item
			index = i
		}
	}
	return common.ItemWithIndex[T]{Item: best, Index: index}, nil
}
