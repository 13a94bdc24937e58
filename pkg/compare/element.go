// Copyright 2024-2025 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compare

import (
	"github.com/daviszhen/rowcmp/pkg/chunk"
)

// compareFunc is one bound column comparator. It is resolved once per
// column pair and then only does data work: no type tag, no direction
// flag, no nullability branch survives into the per-row call.
type compareFunc = func(lrow, rrow int) CmpResult

// bindTemplatedCompare monomorphizes the element compare for type T and
// bakes in null ordering and the nullability of both sides. Views known
// to carry no nulls get a closure that never touches a mask.
func bindTemplatedCompare[T any](
	lvec, rvec *chunk.Vector,
	nullsFirst bool,
	op CompareOp[T],
) compareFunc {
	lData := chunk.GetSliceInPhyFormatFlat[T](lvec)
	rData := chunk.GetSliceInPhyFormatFlat[T](rvec)
	lMask := chunk.GetMaskInPhyFormatFlat(lvec)
	rMask := chunk.GetMaskInPhyFormatFlat(rvec)

	// verdict for a null on the left resp. right side only
	lNull, rNull := CMP_LESS, CMP_GREATER
	if !nullsFirst {
		lNull, rNull = CMP_GREATER, CMP_LESS
	}

	vals := func(lrow, rrow int) CmpResult {
		if op.operation(&lData[lrow], &rData[rrow]) {
			return CMP_LESS
		}
		if op.operation(&rData[rrow], &lData[lrow]) {
			return CMP_GREATER
		}
		return CMP_EQUIVALENT
	}

	lHasNull := lvec.HasNulls()
	rHasNull := rvec.HasNulls()
	switch {
	case !lHasNull && !rHasNull:
		return vals
	case lHasNull && !rHasNull:
		return func(lrow, rrow int) CmpResult {
			if !lMask.RowIsValid(uint64(lrow)) {
				return lNull
			}
			return vals(lrow, rrow)
		}
	case !lHasNull && rHasNull:
		return func(lrow, rrow int) CmpResult {
			if !rMask.RowIsValid(uint64(rrow)) {
				return rNull
			}
			return vals(lrow, rrow)
		}
	default:
		return func(lrow, rrow int) CmpResult {
			lValid := lMask.RowIsValid(uint64(lrow))
			rValid := rMask.RowIsValid(uint64(rrow))
			if lValid && rValid {
				return vals(lrow, rrow)
			}
			if !lValid && !rValid {
				return CMP_EQUIVALENT
			}
			if !lValid {
				return lNull
			}
			return rNull
		}
	}
}
