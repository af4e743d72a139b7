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
	"sync"

	"github.com/nthitem/nthitem-go/common"
)

// Buffers are bucketed by power of two capacity. Larger requests are
// allocated per call and dropped afterwards.
const maxPooledLog2 = 24

var indexPools [maxPooledLog2 + 1]sync.Pool

// rentIndices returns a buffer with at least length slots. Its previous
// contents are unspecified.
func rentIndices(length int) *[]int {
	bucket, pooled := rentBucket(length)
	if !pooled {
		buf := make([]int, length)
		return &buf
	}
	if buf, ok := indexPools[bucket].Get().(*[]int); ok {
		return buf
	}
	buf := make([]int, 1<<bucket)
	return &buf
}

func returnIndices(buf *[]int) {
	if bucket, ok := returnBucket(len(*buf)); ok {
		indexPools[bucket].Put(buf)
	}
}

// rentBucket is the pool serving a request for length slots, and whether
// such a request is pooled at all.
func rentBucket(length int) (int, bool) {
	bucket := common.ExactLog2(common.CeilPowerOf2(length))
	return bucket, bucket <= maxPooledLog2
}

// returnBucket is the pool a buffer of size slots goes back to. Buffers that
// did not come from a pool are rejected.
func returnBucket(size int) (int, bool) {
	if size == 0 || size&(size-1) != 0 || size > 1<<maxPooledLog2 {
		return 0, false
	}
	return common.ExactLog2(size), true
}
