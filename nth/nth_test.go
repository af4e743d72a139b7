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
	"slices"
	"strings"
	"testing"

	"github.com/nthitem/nthitem-go/common"
	"github.com/nthitem/nthitem-go/common/testutils"
	"github.com/stretchr/testify/assert"
)

func TestNthSmallest(t *testing.T) {
	t.Run("Duplicates Scenario", func(t *testing.T) {
		source := []int{4, 4, 8, 1, 2, 5, 4, 4, 4, 6, 7, 3}
		result, err := NthSmallest(source, 6)
		assert.NoError(t, err)
		assert.Equal(t, 4, result.Item)
		assert.Equal(t, 4, source[result.Index])
	})

	t.Run("Single Item", func(t *testing.T) {
		result, err := NthSmallest([]int{5}, 0)
		assert.NoError(t, err)
		assert.Equal(t, common.ItemWithIndex[int]{Item: 5, Index: 0}, result)
	})

	t.Run("Distinct Items Report Original Index", func(t *testing.T) {
		source := []string{"dog", "cat", "elephant", "ant", "bear"}
		result, err := NthSmallest(source, 2)
		assert.NoError(t, err)
		assert.Equal(t, "cat", result.Item)
		assert.Equal(t, 1, result.Index)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := NthSmallest([]int{1, 2, 3}, 3)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = NthSmallest([]int{1, 2, 3}, -1)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = NthSmallest([]int{}, 0)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("Source Is Not Modified", func(t *testing.T) {
		source := testutils.Ints(100, 10, 5)
		original := slices.Clone(source)
		_, err := NthSmallest(source, 50)
		assert.NoError(t, err)
		assert.Equal(t, original, source)
	})
}

func TestNthSmallestMatchesSort(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		source := testutils.Float64s(200, 50, seed)
		sorted := slices.Clone(source)
		slices.Sort(sorted)
		n := testutils.Intn(len(source), seed)

		result, err := NthSmallest(source, n)
		assert.NoError(t, err)
		assert.Equal(t, sorted[n], result.Item, "seed %d", seed)
		assert.Equal(t, source[result.Index], result.Item, "seed %d", seed)
	}
}

func TestNthLargest(t *testing.T) {
	t.Run("Symmetry", func(t *testing.T) {
		source := testutils.Ints(64, 16, 42)
		for n := range source {
			largest, err := NthLargest(source, n)
			assert.NoError(t, err)
			smallest, err := NthSmallest(source, len(source)-1-n)
			assert.NoError(t, err)
			assert.Equal(t, smallest, largest, "n %d", n)
		}
	})

	t.Run("Maximum", func(t *testing.T) {
		result, err := NthLargest([]float64{0.5, 9.25, -3, 2}, 0)
		assert.NoError(t, err)
		assert.Equal(t, common.ItemWithIndex[float64]{Item: 9.25, Index: 1}, result)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := NthLargest([]int{1, 2, 3}, 3)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = NthLargest([]int{1, 2, 3}, -1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestNthFunc(t *testing.T) {
	source := common.Slice[string]{"Banana", "apple", "cherry", "Apricot", "date"}
	caseless := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}

	result, err := NthSmallestFunc[string](source, 1, caseless)
	assert.NoError(t, err)
	assert.Equal(t, common.ItemWithIndex[string]{Item: "Apricot", Index: 3}, result)

	result, err = NthLargestFunc[string](source, 0, caseless)
	assert.NoError(t, err)
	assert.Equal(t, common.ItemWithIndex[string]{Item: "date", Index: 4}, result)

	result, err = NthSmallestFunc[string](source, 0, common.StringComparator(true))
	assert.NoError(t, err)
	assert.Equal(t, "date", result.Item)

	_, err = NthLargestFunc[string](source, 5, caseless)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSelectInto(t *testing.T) {
	t.Run("Reused Buffer", func(t *testing.T) {
		buffer := make([]int, 16)
		for i := range buffer {
			buffer[i] = -1
		}
		source := []int{9, 3, 7, 1, 5}

		assert.NoError(t, SelectInto(source, buffer, 2))
		assert.Equal(t, 5, source[buffer[2]])
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, buffer[:5])
		assert.Equal(t, -1, buffer[5])

		assert.NoError(t, SelectInto(source, buffer, 4))
		assert.Equal(t, 9, source[buffer[4]])
	})

	t.Run("Errors Leave Buffer Untouched", func(t *testing.T) {
		buffer := []int{7, 7, 7}
		assert.ErrorIs(t, SelectInto([]int{1, 2, 3, 4}, buffer, 0), ErrBufferTooSmall)
		assert.ErrorIs(t, SelectInto([]int{1, 2}, buffer, 2), ErrOutOfRange)
		assert.Equal(t, []int{7, 7, 7}, buffer)
	})

	t.Run("Deterministic", func(t *testing.T) {
		source := testutils.Ints(500, 25, 9)
		first := make([]int, len(source))
		second := make([]int, len(source))
		assert.NoError(t, SelectInto(source, first, 321))
		assert.NoError(t, SelectInto(source, second, 321))
		assert.Equal(t, first, second)
	})
}

func TestPool(t *testing.T) {
	buf := rentIndices(5)
	assert.GreaterOrEqual(t, len(*buf), 5)
	assert.Equal(t, 8, len(*buf))
	returnIndices(buf)

	buf = rentIndices(0)
	assert.Equal(t, 1, len(*buf))
	returnIndices(buf)

	odd := make([]int, 6)
	returnIndices(&odd)
}

func TestPoolBuckets(t *testing.T) {
	t.Run("Rent", func(t *testing.T) {
		bucket, pooled := rentBucket(0)
		assert.True(t, pooled)
		assert.Equal(t, 0, bucket)

		bucket, pooled = rentBucket(1000)
		assert.True(t, pooled)
		assert.Equal(t, 10, bucket)

		bucket, pooled = rentBucket(1 << maxPooledLog2)
		assert.True(t, pooled)
		assert.Equal(t, maxPooledLog2, bucket)

		bucket, pooled = rentBucket(1<<maxPooledLog2 + 1)
		assert.False(t, pooled)
		assert.Equal(t, maxPooledLog2+1, bucket)
	})

	t.Run("Return", func(t *testing.T) {
		bucket, ok := returnBucket(1024)
		assert.True(t, ok)
		assert.Equal(t, 10, bucket)

		bucket, ok = returnBucket(1 << maxPooledLog2)
		assert.True(t, ok)
		assert.Equal(t, maxPooledLog2, bucket)

		for _, size := range []int{0, 3, 6, 1000, 1<<maxPooledLog2 + 1, 1 << (maxPooledLog2 + 1)} {
			_, ok = returnBucket(size)
			assert.False(t, ok, "size %d", size)
		}
	})

	t.Run("Odd Sized Buffer Is Not Pooled", func(t *testing.T) {
		odd := make([]int, 6)
		returnIndices(&odd)
		for i := 0; i < 4; i++ {
			buf := rentIndices(5)
			assert.Equal(t, 8, len(*buf))
			returnIndices(buf)
		}
	})
}
