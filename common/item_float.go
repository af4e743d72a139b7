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

// FloatEncoder encodes a float32 as its 4 byte IEEE 754 representation.
// Negative zero and every NaN payload are canonicalized first so that items
// comparing equal also encode equal.
type FloatEncoder struct{}

var FloatComparator = func(reverseOrder bool) CompareFn[float32] {
	if reverseOrder {
		return Reverse[float32](cmp.Compare[float32])
	}
	return cmp.Compare[float32]
}

func (e FloatEncoder) Encode(item float32) []byte {
	bytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(bytes, math.Float32bits(canonicalFloat(item)))
	return bytes
}

func canonicalFloat(item float32) float32 {
	if item == 0 {
		return 0
	}
	if math.IsNaN(float64(item)) {
		return float32(math.NaN())
	}
	return item
}
