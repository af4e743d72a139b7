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

package sampling

import (
	"errors"
	"fmt"
	"math"

	"github.com/nthitem/nthitem-go/common"
	"github.com/nthitem/nthitem-go/nth"
	"github.com/twmb/murmur3"
)

// DefaultSeed is the default seed for item hashing.
const DefaultSeed = uint64(9001)

const minK = 2

var (
	ErrInvalidK   = errors.New("k must be at least 2")
	ErrNilEncoder = errors.New("encoder must not be nil")
)

type samplerOptions struct {
	seed uint64
}

// SamplerOption is a functional option for configuring a BottomKSampler.
type SamplerOption func(*samplerOptions)

// WithSeed sets a custom seed for the item hash.
func WithSeed(seed uint64) SamplerOption {
	return func(opts *samplerOptions) {
		opts.seed = seed
	}
}

// BottomKSampler picks the k distinct items whose hashes are smallest. Since
// the hash is independent of the items' values and positions, the result is
// a uniform sample of the distinct items that is nevertheless reproducible
// for a given seed, and the k-th smallest hash yields a distinct count
// estimate (KMV).
type BottomKSampler[T any] struct {
	k       int
	seed    uint64
	encoder common.ItemEncoder[T]
}

// NewBottomKSampler creates a sampler keeping k items.
func NewBottomKSampler[T any](k int, encoder common.ItemEncoder[T], opts ...SamplerOption) (*BottomKSampler[T], error) {
	if k < minK {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if encoder == nil {
		return nil, ErrNilEncoder
	}

	options := &samplerOptions{
		seed: DefaultSeed,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &BottomKSampler[T]{
		k:       k,
		seed:    options.seed,
		encoder: encoder,
	}, nil
}

func (s *BottomKSampler[T]) K() int {
	return s.k
}

func (s *BottomKSampler[T]) Seed() uint64 {
	return s.seed
}

// Hash returns the hash that ranks item in the sample.
func (s *BottomKSampler[T]) Hash(item T) uint64 {
	return murmur3.SeedSum64(s.seed, s.encoder.Encode(item))
}

// Sample returns up to k distinct items of source ordered by ascending hash.
// Each item is reported with the index of its first occurrence.
func (s *BottomKSampler[T]) Sample(source common.Sequence[T]) ([]common.ItemWithIndex[T], error) {
	hashes, firsts := s.hashDistinct(source)
	smallest, err := nth.SmallestK(hashes, min(s.k, len(hashes)))
	if err != nil {
		return nil, err
	}

	sample := make([]common.ItemWithIndex[T], len(smallest))
	for i, h := range smallest {
		index := firsts[h.Index]
		sample[i] = common.ItemWithIndex[T]{Item: source.At(index), Index: index}
	}
	return sample, nil
}

// EstimateDistinct returns the number of distinct items in source. The count
// is exact while it does not exceed k and estimated from the k-th smallest
// hash otherwise, with a relative standard error near 1/sqrt(k-2).
func (s *BottomKSampler[T]) EstimateDistinct(source common.Sequence[T]) (float64, error) {
	hashes, _ := s.hashDistinct(source)
	if len(hashes) <= s.k {
		return float64(len(hashes)), nil
	}
	kth, err := nth.NthSmallest(hashes, s.k-1)
	if err != nil {
		return 0, err
	}
	theta := float64(kth.Item) / math.Exp2(64)
	if theta == 0 {
		return float64(len(hashes)), nil
	}
	return float64(s.k-1) / theta, nil
}

// hashDistinct hashes every item and keeps the first occurrence of each hash.
func (s *BottomKSampler[T]) hashDistinct(source common.Sequence[T]) ([]uint64, []int) {
	length := source.Len()
	seen := make(map[uint64]struct{}, length)
	hashes := make([]uint64, 0, length)
	firsts := make([]int, 0, length)
	for i := 0; i < length; i++ {
		h := s.Hash(source.At(i))
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		hashes = append(hashes, h)
		firsts = append(firsts, i)
	}
	return hashes, firsts
}
