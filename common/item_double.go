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

package common

import (
	"cmp"
	"encoding/binary"
	"math"
)

// DoubleEncoder encodes a float64 as its 8 byte IEEE 754 representation.
// Negative zero and every NaN payload are canonicalized first so that items
// comparing equal also encode equal.
type DoubleEncoder struct{}

var DoubleComparator = func(reverseOrder bool) CompareFn[float64] {
	if reverseOrder {
		return Reverse[float64](cmp.Compare[float64])
	}
	return cmp.Compare[float64]
}

func (e DoubleEncoder) Encode(item float64) []byte {
	bytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(bytes, math.Float64bits(canonicalDouble(item)))
	return bytes
}

func canonicalDouble(item float64) float64 {
	if item == 0 {
		return 0
	}
	if math.IsNaN(item) {
		return math.NaN()
	}
	return item
}
