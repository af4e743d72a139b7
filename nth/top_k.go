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
	"fmt"
	"slices"

	"github.com/nthitem/nthitem-go/common"
	"github.com/nthitem/nthitem-go/quickselect"
)

// SmallestK returns the k smallest items of source in ascending order. Equal
// items are ordered by their index in source.
func SmallestK[T cmp.Ordered](source []T, k int) ([]common.ItemWithIndex[T], error) {
	return SmallestKFunc[T](common.Slice[T](source), k, cmp.Compare[T])
}

// LargestK returns the k largest items of source in descending order. Equal
// items are ordered by their index in source.
func LargestK[T cmp.Ordered](source []T, k int) ([]common.ItemWithIndex[T], error) {
	return SmallestKFunc[T](common.Slice[T](source), k, common.Reverse[T](cmp.Compare[T]))
}

// LargestKFunc is LargestK over any Sequence with the order given by compare.
func LargestKFunc[T any](source common.Sequence[T], k int, compare common.CompareFn[T]) ([]common.ItemWithIndex[T], error) {
	return SmallestKFunc(source, k, common.Reverse(compare))
}

// SmallestKFunc is SmallestK over any Sequence with the order given by compare.
func SmallestKFunc[T any](source common.Sequence[T], k int, compare common.CompareFn[T]) ([]common.ItemWithIndex[T], error) {
	length := source.Len()
	if k < 0 || k > length {
		return nil, fmt.Errorf("%w: k=%d, source length=%d", ErrOutOfRange, k, length)
	}
	if k == 0 {
		return []common.ItemWithIndex[T]{}, nil
	}

	buf := rentIndices(length)
	defer returnIndices(buf)
	indices := (*buf)[:length]

	if err := SelectIntoFunc(source, indices, k-1, compare); err != nil {
		return nil, err
	}
	if err := narrowPrefix(source, indices, k, compare); err != nil {
		return nil, err
	}

	items := make([]common.ItemWithIndex[T], k)
	for i, index := range indices[:k] {
		items[i] = common.ItemWithIndex[T]{Item: source.At(index), Index: index}
	}
	return items, nil
}

// narrowPrefix orders indices[:k] after rank k-1 has been selected. Each rank
// r below k-1 is selected inside [0, r+1), which is already split from the
// rest of the buffer by the selection of r+1. Runs of equal items are then
// ordered by index.
func narrowPrefix[T any](source common.Sequence[T], indices []int, k int, compare common.CompareFn[T]) error {
	for r := k - 2; r >= 0; r-- {
		if err := quickselect.ExecuteRange(source, indices, r, 0, r+1, compare); err != nil {
			return err
		}
	}
	for lo := 0; lo < k; {
		hi := lo + 1
		for hi < k && compare(source.At(indices[lo]), source.At(indices[hi])) == 0 {
			hi++
		}
		slices.Sort(indices[lo:hi])
		lo = hi
	}
	return nil
}
