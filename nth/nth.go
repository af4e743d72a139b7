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

// Package nth answers "which item would be at position n if this were
// sorted" without sorting, and reports where that item sits in the source.
//
// Ranks are zero based: NthSmallest(source, 0) is the minimum and
// NthLargest(source, 0) is the maximum. The source is never modified.
// Among equal items the one reported is whichever the partitioning settles
// on, not necessarily the first.
package nth

import (
	"cmp"
	"errors"

	"github.com/nthitem/nthitem-go/common"
	"github.com/nthitem/nthitem-go/quickselect"
)

var (
	ErrOutOfRange     = quickselect.ErrOutOfRange
	ErrBufferTooSmall = quickselect.ErrBufferTooSmall
	ErrEmptySequence  = errors.New("operation is undefined for an empty sequence")
)

// NthSmallest returns the item of rank n in ascending order with its index in source.
func NthSmallest[T cmp.Ordered](source []T, n int) (common.ItemWithIndex[T], error) {
	return NthSmallestFunc[T](common.Slice[T](source), n, cmp.Compare[T])
}

// NthLargest returns the item of rank n in descending order, which is rank
// len(source)-1-n in ascending order.
func NthLargest[T cmp.Ordered](source []T, n int) (common.ItemWithIndex[T], error) {
	return NthLargestFunc[T](common.Slice[T](source), n, cmp.Compare[T])
}

// NthSmallestFunc is NthSmallest over any Sequence with the order given by compare.
func NthSmallestFunc[T any](source common.Sequence[T], n int, compare common.CompareFn[T]) (common.ItemWithIndex[T], error) {
	length := source.Len()
	if err := quickselect.Validate(length, length, n); err != nil {
		return common.ItemWithIndex[T]{}, err
	}

	buf := rentIndices(length)
	defer returnIndices(buf)
	indices := (*buf)[:length]

	if err := SelectIntoFunc(source, indices, n, compare); err != nil {
		return common.ItemWithIndex[T]{}, err
	}
	return common.ItemWithIndex[T]{Item: source.At(indices[n]), Index: indices[n]}, nil
}

// NthLargestFunc is NthLargest over any Sequence with the order given by compare.
func NthLargestFunc[T any](source common.Sequence[T], n int, compare common.CompareFn[T]) (common.ItemWithIndex[T], error) {
	length := source.Len()
	if err := quickselect.Validate(length, length, n); err != nil {
		return common.ItemWithIndex[T]{}, err
	}
	return NthSmallestFunc(source, length-1-n, compare)
}

// SelectInto resets buffer[:len(source)] to the identity permutation and
// selects rank n into it, so that buffer[n] is the index of the answer.
// The caller keeps the buffer and may narrow it further with
// quickselect.ExecuteRange. Nothing is written when an error is returned.
func SelectInto[T cmp.Ordered](source []T, buffer []int, n int) error {
	return SelectIntoFunc[T](common.Slice[T](source), buffer, n, cmp.Compare[T])
}

// SelectIntoFunc is SelectInto over any Sequence with the order given by compare.
func SelectIntoFunc[T any](source common.Sequence[T], buffer []int, n int, compare common.CompareFn[T]) error {
	length := source.Len()
	if err := quickselect.Validate(length, len(buffer), n); err != nil {
		return err
	}
	quickselect.Iota(buffer[:length])
	return quickselect.ExecuteFunc(source, buffer, n, compare)
}
