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

package quickselect

import "github.com/nthitem/nthitem-go/common"

// partition reorders indices[begin:begin+count] around the item referenced by
// the last slot of the window and returns the pivot's final position.
// Items left of the returned position are strictly less than the pivot, items
// at or right of it are greater or equal. Equal items therefore land on the
// right. Slots outside the window are not touched.
func partition[T any](source common.Sequence[T], indices []int, begin int, count int, compare common.CompareFn[T]) int {
	if count <= 1 {
		return begin
	}

	l := begin
	r := begin + count - 2
	last := begin + count - 1

	pivot := source.At(indices[last])

	for l <= r {
		for l < last && compare(source.At(indices[l]), pivot) < 0 {
			l++
		}
		for begin <= r && compare(source.At(indices[r]), pivot) >= 0 {
			r--
		}
		if r < l {
			break
		}
		indices[l], indices[r] = indices[r], indices[l]
		l++
		r--
	}

	indices[l], indices[last] = indices[last], indices[l]
	return l
}

// selectRange keeps partitioning the part of the window that still holds n
// until the pivot lands on n. The pivot is excluded from the next window so
// the window shrinks on every pass.
func selectRange[T any](source common.Sequence[T], indices []int, n int, begin int, count int, compare common.CompareFn[T]) {
	p := partition(source, indices, begin, count, compare)
	for p != n {
		if p < n {
			count = begin + count - p - 1
			begin = p + 1
		} else {
			count = p - begin
		}
		p = partition(source, indices, begin, count, compare)
	}
}
