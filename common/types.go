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

import "cmp"

// CompareFn is a three-way comparison: negative when a sorts before b,
// zero when they are equal and positive when a sorts after b.
type CompareFn[T any] func(a, b T) int

// Sequence is a read-only indexed view of items with a known length.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a plain slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) At(i int) T {
	return s[i]
}

// ItemWithIndex pairs an item with its position in the source it was read from.
type ItemWithIndex[T any] struct {
	Item  T
	Index int
}

// ItemEncoder turns an item into bytes suitable for hashing.
type ItemEncoder[T any] interface {
	Encode(item T) []byte
}

// NaturalOrder returns cmp.Compare for T. Floating point NaN sorts before
// every other value and is equal to itself.
func NaturalOrder[T cmp.Ordered]() CompareFn[T] {
	return cmp.Compare[T]
}

// Reverse inverts the order defined by compare.
func Reverse[T any](compare CompareFn[T]) CompareFn[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}
