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

package quantiles

import (
	"math"
)

// Ranks that are meant to land on an item boundary, such as 0.3 of 10 items,
// are rounded so that floating point noise does not move them to the
// neighbouring item.
const tailRoundingFactor = 1e7

func checkNormalizedRankBounds(rank float64) error {
	if !(rank >= 0 && rank <= 1) {
		return ErrInvalidRank
	}
	return nil
}

func getNaturalRank(normalizedRank float64, totalN int, inclusive bool) int {
	naturalRank := normalizedRank * float64(totalN)
	if totalN <= tailRoundingFactor {
		naturalRank = math.Round(naturalRank*tailRoundingFactor) / tailRoundingFactor
	}
	if inclusive {
		return int(math.Ceil(naturalRank))
	}
	return int(math.Floor(naturalRank))
}

// quantileIndex maps a normalized rank to the zero based sorted position
// answering it. Inclusive picks the first item whose count of items at or
// below it reaches rank*N. Exclusive picks the first item whose count of
// items at or below it exceeds rank*N.
func quantileIndex(rank float64, totalN int, inclusive bool) int {
	naturalRank := getNaturalRank(rank, totalN, inclusive)
	if inclusive {
		return max(naturalRank-1, 0)
	}
	return min(naturalRank, totalN-1)
}
