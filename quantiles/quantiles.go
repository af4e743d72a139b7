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

// Package quantiles computes exact quantiles of an in-memory source by rank
// selection instead of sorting. Rank conventions follow the kll sketches:
// a normalized rank in [0, 1] and an inclusive or exclusive search.
package quantiles

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/nthitem/nthitem-go/common"
	"github.com/nthitem/nthitem-go/nth"
	"github.com/nthitem/nthitem-go/quickselect"
	"golang.org/x/exp/constraints"
)

var (
	ErrEmpty       = errors.New("operation is undefined for an empty source")
	ErrInvalidRank = errors.New("normalized rank must be between 0 and 1 inclusive")
)

// GetQuantile returns the item at the given normalized rank.
//
// With inclusive set the result q is the smallest item such that the
// fraction of items <= q is at least rank. Otherwise the fraction of
// items <= q must exceed rank, with rank 1 mapping to the maximum.
func GetQuantile[T cmp.Ordered](source []T, rank float64, inclusive bool) (T, error) {
	return GetQuantileFunc[T](common.Slice[T](source), rank, inclusive, cmp.Compare[T])
}

// GetQuantileFunc is GetQuantile over any Sequence with the order given by compare.
func GetQuantileFunc[T any](source common.Sequence[T], rank float64, inclusive bool, compare common.CompareFn[T]) (T, error) {
	var zero T
	length := source.Len()
	if length == 0 {
		return zero, ErrEmpty
	}
	if err := checkNormalizedRankBounds(rank); err != nil {
		return zero, err
	}
	result, err := nth.NthSmallestFunc(source, quantileIndex(rank, length, inclusive), compare)
	if err != nil {
		return zero, err
	}
	return result.Item, nil
}

// GetQuantiles answers several ranks with a single index buffer. Results are
// returned in the order of ranks.
func GetQuantiles[T cmp.Ordered](source []T, ranks []float64, inclusive bool) ([]T, error) {
	return GetQuantilesFunc[T](common.Slice[T](source), ranks, inclusive, cmp.Compare[T])
}

// GetQuantilesFunc is GetQuantiles over any Sequence with the order given by compare.
func GetQuantilesFunc[T any](source common.Sequence[T], ranks []float64, inclusive bool, compare common.CompareFn[T]) ([]T, error) {
	length := source.Len()
	if length == 0 {
		return nil, ErrEmpty
	}
	positions := make([]int, len(ranks))
	for i, rank := range ranks {
		if err := checkNormalizedRankBounds(rank); err != nil {
			return nil, err
		}
		positions[i] = quantileIndex(rank, length, inclusive)
	}
	results := make([]T, len(ranks))
	if len(ranks) == 0 {
		return results, nil
	}

	// Select the highest position over the whole buffer, then every lower
	// one inside the prefix left of the previous answer.
	order := make([]int, len(ranks))
	quickselect.Iota(order)
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(positions[b], positions[a])
	})

	indices := make([]int, length)
	upper := positions[order[0]]
	if err := nth.SelectIntoFunc(source, indices, upper, compare); err != nil {
		return nil, err
	}
	for _, slot := range order[1:] {
		position := positions[slot]
		if position == upper {
			continue
		}
		if err := quickselect.ExecuteRange(source, indices, position, 0, upper, compare); err != nil {
			return nil, err
		}
		upper = position
	}

	for i, position := range positions {
		results[i] = source.At(indices[position])
	}
	return results, nil
}

// Median returns the lower median: for an even number of items the smaller
// of the two middle items.
func Median[T cmp.Ordered](source []T) (T, error) {
	return GetQuantile(source, 0.5, true)
}

// MedianFunc is Median over any Sequence with the order given by compare.
func MedianFunc[T any](source common.Sequence[T], compare common.CompareFn[T]) (T, error) {
	return GetQuantileFunc(source, 0.5, true, compare)
}

// Interpolated returns the value at position rank*(N-1) of the sorted source,
// interpolating linearly between the two items around a fractional position.
func Interpolated[T constraints.Integer | constraints.Float](source []T, rank float64) (float64, error) {
	length := len(source)
	if length == 0 {
		return 0, ErrEmpty
	}
	if err := checkNormalizedRankBounds(rank); err != nil {
		return 0, err
	}

	position := rank * float64(length-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))

	seq := common.Slice[T](source)
	compare := common.NaturalOrder[T]()
	indices := make([]int, length)
	if err := nth.SelectIntoFunc[T](seq, indices, upper, compare); err != nil {
		return 0, err
	}
	hi := float64(source[indices[upper]])
	if lower == upper {
		return hi, nil
	}
	if err := quickselect.ExecuteRange[T](seq, indices, lower, 0, upper, compare); err != nil {
		return 0, err
	}
	lo := float64(source[indices[lower]])
	return lo + (hi-lo)*(position-float64(lower)), nil
}
