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
)

// RowComparator orders rows of two table views lexicographically over
// their columns, most significant column first. All type and direction
// resolution happens here, in the constructor. The per-row calls run
// pre-bound closures only.
//
// The relation it induces is a strict weak ordering, so it plugs
// directly into sort and merge routines.
type RowComparator struct {
	lhs       *chunk.Chunk
	rhs       *chunk.Chunk
	nullOrder OrderByNullType
	cmps      []compareFunc
}

// NewRowComparator binds one comparator per column pair. orders gives
// the per-column direction, nil means all ascending. Both views must
// agree in column count and in the storage type of every column pair.
func NewRowComparator(
	lhs, rhs *chunk.Chunk,
	nullOrder OrderByNullType,
	orders []OrderType,
) (*RowComparator, error) {
	if lhs.ColumnCount() == 0 {
		return nil, fmt.Errorf("left table has no columns")
	}
	if lhs.ColumnCount() != rhs.ColumnCount() {
		return nil, fmt.Errorf("column count mismatch: left %d right %d",
			lhs.ColumnCount(), rhs.ColumnCount())
	}
	if orders != nil && len(orders) != lhs.ColumnCount() {
		return nil, fmt.Errorf("order count mismatch: %d orders for %d columns",
			len(orders), lhs.ColumnCount())
	}
	for i := 0; i < lhs.ColumnCount(); i++ {
		lTyp := lhs.Data[i].Typ()
		rTyp := rhs.Data[i].Typ()
		if lTyp.GetInternalType() != rTyp.GetInternalType() {
			return nil, fmt.Errorf("column %d type mismatch: left %s right %s",
				i, lTyp, rTyp)
		}
	}

	comp := &RowComparator{
		lhs:       lhs,
		rhs:       rhs,
		nullOrder: nullOrder,
		cmps:      make([]compareFunc, 0, lhs.ColumnCount()),
	}
	for i := 0; i < lhs.ColumnCount(); i++ {
		order := OT_ASC
		if orders != nil {
			order = orders[i]
		}
		var fn compareFunc
		if order == OT_DESC {
			// descending reuses the ascending path with the operands
			// swapped. the swap lives inside the bound closure.
			asc := bindColumnCompare(rhs.Data[i], lhs.Data[i], nullOrder)
			fn = func(lrow, rrow int) CmpResult {
				return asc(rrow, lrow)
			}
		} else {
			fn = bindColumnCompare(lhs.Data[i], rhs.Data[i], nullOrder)
		}
		comp.cmps = append(comp.cmps, fn)
	}
	return comp, nil
}

// Compare walks the columns in precedence order and returns the verdict
// of the first column that is not equivalent. Rows equivalent on every
// column are equivalent as rows.
func (comp *RowComparator) Compare(lrow, rrow int) CmpResult {
	for _, fn := range comp.cmps {
		ret := fn(lrow, rrow)
		if ret != CMP_EQUIVALENT {
			return ret
		}
	}
	return CMP_EQUIVALENT
}

// IsLess is the sort predicate form: true iff row lrow of the left view
// precedes row rrow of the right view.
func (comp *RowComparator) IsLess(lrow, rrow int) bool {
	return comp.Compare(lrow, rrow) == CMP_LESS
}

func (comp *RowComparator) ColumnCount() int {
	return len(comp.cmps)
}
