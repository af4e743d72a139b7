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

// Package quickselect finds order statistics of a read-only source by
// permuting a buffer of indices into it instead of moving the items.
//
// After a successful call indices[n] refers to the item that would sit at
// position n if the source were sorted, every slot before n refers to an item
// that is less than or equal to it and every slot after n to an item that is
// greater than or equal to it.
//
// The pivot is always the last item of the current window, so sorted or
// crafted inputs degrade to quadratic time.
package quickselect

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/nthitem/nthitem-go/common"
)

var (
	ErrOutOfRange     = errors.New("rank is out of range")
	ErrBufferTooSmall = errors.New("index buffer is shorter than the source")
)

// Iota fills indices with the identity permutation 0, 1, ..., len(indices)-1.
func Iota(indices []int) {
	for i := range indices {
		indices[i] = i
	}
}

// Validate reports whether rank n can be selected from a source of the given
// length using an index buffer of bufferLen slots.
func Validate(length int, bufferLen int, n int) error {
	if n < 0 || n >= length {
		return fmt.Errorf("%w: n=%d, source length=%d", ErrOutOfRange, n, length)
	}
	if bufferLen < length {
		return fmt.Errorf("%w: buffer length=%d, source length=%d", ErrBufferTooSmall, bufferLen, length)
	}
	return nil
}

// Execute selects rank n of source in natural order. indices must already
// hold a permutation of [0, len(source)), usually set up with Iota.
func Execute[T cmp.Ordered](source []T, indices []int, n int) error {
	return ExecuteFunc[T](common.Slice[T](source), indices, n, cmp.Compare[T])
}

// ExecuteFunc is Execute over any Sequence with the order given by compare.
// compare must define a consistent total order; this is not verified.
func ExecuteFunc[T any](source common.Sequence[T], indices []int, n int, compare common.CompareFn[T]) error {
	length := source.Len()
	if err := Validate(length, len(indices), n); err != nil {
		return err
	}
	selectRange(source, indices, n, 0, length, compare)
	return nil
}

// ExecuteRange narrows only the window indices[begin:begin+count] onto rank n.
// The window must already be partitioned from the rest of the buffer, which
// holds after a previous selection whose rank lies at begin-1 or begin+count.
// This lets a caller walk down a buffer (select k, then k-1 within [0, k),
// and so on) without rescanning the whole source.
func ExecuteRange[T any](source common.Sequence[T], indices []int, n int, begin int, count int, compare common.CompareFn[T]) error {
	length := source.Len()
	if err := Validate(length, len(indices), n); err != nil {
		return err
	}
	if begin < 0 || count < 0 || count > length-begin {
		return fmt.Errorf("%w: window [%d, %d) exceeds source length=%d", ErrOutOfRange, begin, begin+count, length)
	}
	if n < begin || n-begin >= count {
		return fmt.Errorf("%w: n=%d outside window [%d, %d)", ErrOutOfRange, n, begin, begin+count)
	}
	selectRange(source, indices, n, begin, count, compare)
	return nil
}
