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

import (
	"testing"

	"github.com/nthitem/nthitem-go/common"
	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	compare := common.NaturalOrder[int]()

	t.Run("Three Distinct Items", func(t *testing.T) {
		source := common.Slice[int]{3, 1, 2}
		indices := []int{0, 1, 2}

		p := partition[int](source, indices, 0, 3, compare)

		assert.Equal(t, 1, p)
		assert.Equal(t, []int{1, 2, 0}, indices)
	})

	t.Run("All Equal Pivot Lands At Begin", func(t *testing.T) {
		source := common.Slice[int]{2, 2, 2}
		indices := []int{0, 1, 2}

		p := partition[int](source, indices, 0, 3, compare)

		assert.Equal(t, 0, p)
		assert.Equal(t, []int{2, 1, 0}, indices)
	})

	t.Run("Pivot Is Maximum", func(t *testing.T) {
		source := common.Slice[int]{1, 0, 9}
		indices := []int{0, 1, 2}

		p := partition[int](source, indices, 0, 3, compare)

		assert.Equal(t, 2, p)
		assert.Equal(t, []int{0, 1, 2}, indices)
	})

	t.Run("Single And Empty Windows", func(t *testing.T) {
		source := common.Slice[int]{5, 4, 3}
		indices := []int{0, 1, 2}

		assert.Equal(t, 1, partition[int](source, indices, 1, 1, compare))
		assert.Equal(t, 2, partition[int](source, indices, 2, 0, compare))
		assert.Equal(t, []int{0, 1, 2}, indices)
	})

	t.Run("Only Window Is Touched", func(t *testing.T) {
		source := common.Slice[int]{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
		indices := make([]int, len(source))
		Iota(indices)

		p := partition[int](source, indices, 3, 4, compare)

		assert.Equal(t, []int{0, 1, 2}, indices[:3])
		assert.Equal(t, []int{7, 8, 9}, indices[7:])
		assert.ElementsMatch(t, []int{3, 4, 5, 6}, indices[3:7])
		pivot := source[indices[p]]
		for i := 3; i < p; i++ {
			assert.Less(t, source[indices[i]], pivot)
		}
		for i := p; i < 7; i++ {
			assert.GreaterOrEqual(t, source[indices[i]], pivot)
		}
	})
}

func TestPartitionPostcondition(t *testing.T) {
	compare := common.NaturalOrder[int]()
	for seed := uint64(0); seed < 50; seed++ {
		source := common.Slice[int](randomInts(64, 8, seed))
		indices := make([]int, len(source))
		Iota(indices)

		p := partition[int](source, indices, 0, len(source), compare)

		pivot := source[indices[p]]
		for i := 0; i < p; i++ {
			assert.Less(t, source[indices[i]], pivot, "seed %d slot %d", seed, i)
		}
		for i := p; i < len(source); i++ {
			assert.GreaterOrEqual(t, source[indices[i]], pivot, "seed %d slot %d", seed, i)
		}
		assert.ElementsMatch(t, identity(len(source)), indices)
	}
}

func TestSelectRangeNarrowsToRank(t *testing.T) {
	source := common.Slice[int]{5, 4, 3, 2, 1}
	compare := common.NaturalOrder[int]()
	for n := 0; n < len(source); n++ {
		indices := identity(len(source))
		selectRange[int](source, indices, n, 0, len(source), compare)
		assert.Equal(t, n+1, source[indices[n]])
	}
}
