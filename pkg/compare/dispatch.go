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
	"fmt"

	"github.com/daviszhen/rowcmp/pkg/chunk"
	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/util"
)

// bindColumnCompare resolves the runtime type tag of one column pair to
// a monomorphized comparator. Runs once per pair at construction.
func bindColumnCompare(
	lvec, rvec *chunk.Vector,
	nullOrder OrderByNullType,
) compareFunc {
	util.AssertFunc(lvec.Typ().GetInternalType() == rvec.Typ().GetInternalType())
	nullsFirst := nullOrder != OBNT_NULLS_LAST
	pTyp := lvec.Typ().GetInternalType()
	switch pTyp {
	case common.BOOL:
		return bindTemplatedCompare[bool](lvec, rvec, nullsFirst, lessBoolOp{})
	case common.INT8:
		return bindTemplatedCompare[int8](lvec, rvec, nullsFirst, lessOp[int8]{})
	case common.INT16:
		return bindTemplatedCompare[int16](lvec, rvec, nullsFirst, lessOp[int16]{})
	case common.INT32:
		return bindTemplatedCompare[int32](lvec, rvec, nullsFirst, lessOp[int32]{})
	case common.INT64:
		return bindTemplatedCompare[int64](lvec, rvec, nullsFirst, lessOp[int64]{})
	case common.UINT8:
		return bindTemplatedCompare[uint8](lvec, rvec, nullsFirst, lessOp[uint8]{})
	case common.UINT16:
		return bindTemplatedCompare[uint16](lvec, rvec, nullsFirst, lessOp[uint16]{})
	case common.UINT32:
		return bindTemplatedCompare[uint32](lvec, rvec, nullsFirst, lessOp[uint32]{})
	case common.UINT64:
		return bindTemplatedCompare[uint64](lvec, rvec, nullsFirst, lessOp[uint64]{})
	case common.FLOAT:
		return bindTemplatedCompare[float32](lvec, rvec, nullsFirst, lessFloatOp[float32]{})
	case common.DOUBLE:
		return bindTemplatedCompare[float64](lvec, rvec, nullsFirst, lessFloatOp[float64]{})
	case common.VARCHAR:
		return bindTemplatedCompare[common.String](lvec, rvec, nullsFirst, lessStrOp{})
	case common.DATE:
		return bindTemplatedCompare[common.Date](lvec, rvec, nullsFirst, lessDateOp{})
	case common.DECIMAL:
		return bindTemplatedCompare[common.Decimal](lvec, rvec, nullsFirst, lessDecimalOp{})
	case common.INT128:
		return bindTemplatedCompare[common.Hugeint](lvec, rvec, nullsFirst, lessHugeintOp{})
	default:
		// no total order for this type. the bound closure carries the
		// diagnostic so the failure names the offender when it fires.
		typ := lvec.Typ()
		return func(lrow, rrow int) CmpResult {
			panic(fmt.Sprintf("attempted to compare elements of uncomparable type %s", typ))
		}
	}
}
