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

package check

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daviszhen/rowcmp/pkg/chunk"
	"github.com/daviszhen/rowcmp/pkg/compare"
	"github.com/daviszhen/rowcmp/pkg/scan"
	"github.com/daviszhen/rowcmp/pkg/util"
)

// Result of a sortedness check. BadRow is the global index of the first
// row that sorts before its predecessor, -1 when the file is sorted.
type Result struct {
	Rows   int
	Chunks int
	Sorted bool
	BadRow int
	Prev   string
	Cur    string
}

type Checker struct {
	Orders      []compare.OrderType
	NullOrder   compare.OrderByNullType
	Concurrency int
	PrintRows   bool
}

// Check streams the file chunk by chunk and verifies that every row
// sorts at or after its predecessor. Adjacent chunks are stitched with
// a two-table comparator over the boundary pair.
func (c *Checker) Check(s *scan.Scanner) (*Result, error) {
	ret := &Result{
		Sorted: true,
		BadRow: -1,
	}
	var prev *chunk.Chunk
	base := 0
	for {
		cur := &chunk.Chunk{}
		err := s.Read(cur, util.DefaultVectorSize)
		if err != nil {
			return nil, err
		}
		if cur.Card() == 0 {
			break
		}
		if c.PrintRows {
			cur.Print(fmt.Sprintf("chunk %d", ret.Chunks))
		}

		if prev != nil {
			// boundary pair: last row of prev against first row of cur
			comp, err := compare.NewRowComparator(prev, cur, c.NullOrder, c.Orders)
			if err != nil {
				return nil, err
			}
			if comp.Compare(prev.Card()-1, 0) == compare.CMP_GREATER {
				ret.Rows += cur.Card()
				ret.Chunks++
				c.fill(ret, prev, prev.Card()-1, cur, 0, base)
				return ret, nil
			}
		}

		bad, err := c.checkChunk(cur)
		if err != nil {
			return nil, err
		}
		if bad >= 0 {
			ret.Rows += cur.Card()
			ret.Chunks++
			c.fill(ret, cur, bad-1, cur, bad, base+bad)
			return ret, nil
		}

		base += cur.Card()
		ret.Rows += cur.Card()
		ret.Chunks++
		prev = cur
	}
	return ret, nil
}

// checkChunk compares every adjacent pair inside one chunk. Returns the
// row index of the first out-of-order row, -1 if none. Row ranges are
// split across workers; the comparator is bound once and shared.
func (c *Checker) checkChunk(tbl *chunk.Chunk) (int, error) {
	comp, err := compare.NewRowComparator(tbl, tbl, c.NullOrder, c.Orders)
	if err != nil {
		return -1, err
	}
	card := tbl.Card()
	workers := c.Concurrency
	if workers <= 1 || card < 2*workers {
		for i := 1; i < card; i++ {
			if comp.Compare(i-1, i) == compare.CMP_GREATER {
				return i, nil
			}
		}
		return -1, nil
	}

	bads := make([]int, workers)
	g := errgroup.Group{}
	step := (card + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * step
		hi := min(lo+step, card)
		if lo == 0 {
			lo = 1
		}
		idx := w
		g.Go(func() error {
			bads[idx] = -1
			for i := lo; i < hi; i++ {
				if comp.Compare(i-1, i) == compare.CMP_GREATER {
					bads[idx] = i
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return -1, err
	}
	for _, bad := range bads {
		if bad >= 0 {
			return bad, nil
		}
	}
	return -1, nil
}

func (c *Checker) fill(
	ret *Result,
	prevTbl *chunk.Chunk, prevRow int,
	curTbl *chunk.Chunk, curRow int,
	globalRow int,
) {
	ret.Sorted = false
	ret.BadRow = globalRow
	ret.Prev = renderRow(prevTbl, prevRow)
	ret.Cur = renderRow(curTbl, curRow)
	util.Error("order violation",
		zap.Int("row", globalRow),
		zap.String("prev", ret.Prev),
		zap.String("cur", ret.Cur))
}

func renderRow(tbl *chunk.Chunk, row int) string {
	cols := make([]string, 0, tbl.ColumnCount())
	for j := 0; j < tbl.ColumnCount(); j++ {
		cols = append(cols, tbl.GetValue(j, row).String())
	}
	return strings.Join(cols, "|")
}
