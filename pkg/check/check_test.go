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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/compare"
	"github.com/daviszhen/rowcmp/pkg/scan"
)

func newCsvScanner(t *testing.T, cont string, typs []common.LType, cols []int) *scan.Scanner {
	fpath := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(fpath, []byte(cont), 0644))
	s, err := scan.NewScanner(fpath, "csv", typs, cols)
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func Test_checkSorted(t *testing.T) {
	s := newCsvScanner(t,
		"1,b\n1,c\n2,a\n3,a\n",
		[]common.LType{common.IntegerType(), common.VarcharType()},
		[]int{0, 1})
	c := &Checker{
		Orders:    []compare.OrderType{compare.OT_ASC, compare.OT_ASC},
		NullOrder: compare.OBNT_NULLS_FIRST,
	}
	ret, err := c.Check(s)
	require.NoError(t, err)
	assert.True(t, ret.Sorted)
	assert.Equal(t, 4, ret.Rows)
	assert.Equal(t, -1, ret.BadRow)
}

func Test_checkViolation(t *testing.T) {
	s := newCsvScanner(t,
		"1,b\n2,a\n2,b\n1,z\n",
		[]common.LType{common.IntegerType(), common.VarcharType()},
		[]int{0, 1})
	c := &Checker{
		Orders:    []compare.OrderType{compare.OT_ASC, compare.OT_ASC},
		NullOrder: compare.OBNT_NULLS_FIRST,
	}
	ret, err := c.Check(s)
	require.NoError(t, err)
	assert.False(t, ret.Sorted)
	assert.Equal(t, 3, ret.BadRow)
	assert.Equal(t, "2|b", ret.Prev)
	assert.Equal(t, "1|z", ret.Cur)
}

func Test_checkDescKey(t *testing.T) {
	s := newCsvScanner(t,
		"9\n5\n5\n1\n",
		[]common.LType{common.IntegerType()},
		[]int{0})
	c := &Checker{
		Orders:    []compare.OrderType{compare.OT_DESC},
		NullOrder: compare.OBNT_NULLS_FIRST,
	}
	ret, err := c.Check(s)
	require.NoError(t, err)
	assert.True(t, ret.Sorted)
}

func Test_checkNullsFirst(t *testing.T) {
	cont := ",x\n,y\n1,a\n2,b\n"
	typs := []common.LType{common.IntegerType(), common.VarcharType()}

	s := newCsvScanner(t, cont, typs, []int{0, 1})
	c := &Checker{
		Orders:    []compare.OrderType{compare.OT_ASC, compare.OT_ASC},
		NullOrder: compare.OBNT_NULLS_FIRST,
	}
	ret, err := c.Check(s)
	require.NoError(t, err)
	assert.True(t, ret.Sorted)

	// the same rows are out of order under nulls-last
	s2 := newCsvScanner(t, cont, typs, []int{0, 1})
	c.NullOrder = compare.OBNT_NULLS_LAST
	ret, err = c.Check(s2)
	require.NoError(t, err)
	assert.False(t, ret.Sorted)
	assert.Equal(t, 2, ret.BadRow)
}

func Test_checkChunkBoundary(t *testing.T) {
	// enough rows to span several chunks, one inversion at a chunk seam
	var sb strings.Builder
	rows := 5000
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	s := newCsvScanner(t, sb.String(),
		[]common.LType{common.IntegerType()}, []int{0})
	c := &Checker{
		Orders:    []compare.OrderType{compare.OT_ASC},
		NullOrder: compare.OBNT_NULLS_FIRST,
	}
	ret, err := c.Check(s)
	require.NoError(t, err)
	assert.True(t, ret.Sorted)
	assert.Equal(t, rows, ret.Rows)
	assert.Equal(t, 3, ret.Chunks)

	var sb2 strings.Builder
	for i := 0; i < 2048; i++ {
		fmt.Fprintf(&sb2, "%d\n", i)
	}
	// first row of the second chunk sorts before the seam
	fmt.Fprintf(&sb2, "%d\n", 100)
	s2 := newCsvScanner(t, sb2.String(),
		[]common.LType{common.IntegerType()}, []int{0})
	ret, err = c.Check(s2)
	require.NoError(t, err)
	assert.False(t, ret.Sorted)
	assert.Equal(t, 2048, ret.BadRow)
}

func Test_checkConcurrent(t *testing.T) {
	var sb strings.Builder
	rows := 4000
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d\n", i/3)
	}
	s := newCsvScanner(t, sb.String(),
		[]common.LType{common.IntegerType()}, []int{0})
	c := &Checker{
		Orders:      []compare.OrderType{compare.OT_ASC},
		NullOrder:   compare.OBNT_NULLS_FIRST,
		Concurrency: 4,
	}
	ret, err := c.Check(s)
	require.NoError(t, err)
	assert.True(t, ret.Sorted)
	assert.Equal(t, rows, ret.Rows)
}

func Test_checkHugeintKey(t *testing.T) {
	// values straddling the 64-bit boundary, sorted
	typs, orders, err := ParseKeyTypes("hugeint")
	require.NoError(t, err)

	s := newCsvScanner(t,
		"-170141183460469231731687303715884105728\n"+
			"-5\n0\n18446744073709551616\n",
		typs, []int{0})
	c := &Checker{
		Orders:    orders,
		NullOrder: compare.OBNT_NULLS_FIRST,
	}
	ret, err := c.Check(s)
	require.NoError(t, err)
	assert.True(t, ret.Sorted)
	assert.Equal(t, 4, ret.Rows)

	// 2^64 sorts after 1, not before
	s2 := newCsvScanner(t,
		"18446744073709551616\n1\n",
		typs, []int{0})
	ret, err = c.Check(s2)
	require.NoError(t, err)
	assert.False(t, ret.Sorted)
	assert.Equal(t, 1, ret.BadRow)
}

func Test_parseKeyTypes(t *testing.T) {
	typs, orders, err := ParseKeyTypes("int varchar:desc decimal(18,2) date:asc")
	require.NoError(t, err)
	require.Len(t, typs, 4)
	assert.Equal(t, common.IntegerType(), typs[0])
	assert.Equal(t, common.VarcharType(), typs[1])
	assert.Equal(t, common.DecimalType(18, 2), typs[2])
	assert.Equal(t, []compare.OrderType{
		compare.OT_ASC, compare.OT_DESC, compare.OT_ASC, compare.OT_ASC,
	}, orders)

	typs, _, err = ParseKeyTypes("timestamp hugeint")
	require.NoError(t, err)
	assert.Equal(t, common.TimestampType(), typs[0])
	assert.Equal(t, common.HugeintType(), typs[1])

	_, _, err = ParseKeyTypes("")
	assert.Error(t, err)
	_, _, err = ParseKeyTypes("int:down")
	assert.Error(t, err)
	_, _, err = ParseKeyTypes("int7")
	assert.Error(t, err)
	// no order relation, must fail at parse time instead of during read
	_, _, err = ParseKeyTypes("interval")
	assert.Error(t, err)
	_, _, err = ParseKeyTypes("int interval:desc")
	assert.Error(t, err)
}

func Test_parseNullOrder(t *testing.T) {
	no, err := ParseNullOrder("nulls_first")
	require.NoError(t, err)
	assert.Equal(t, compare.OBNT_NULLS_FIRST, no)
	no, err = ParseNullOrder("")
	require.NoError(t, err)
	assert.Equal(t, compare.OBNT_NULLS_FIRST, no)
	_, err = ParseNullOrder("nulls_middle")
	assert.Error(t, err)
}

func Test_parseColumns(t *testing.T) {
	cols, err := ParseColumns([]string{"0", "3", "1"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1}, cols)
	_, err = ParseColumns([]string{"a"})
	assert.Error(t, err)
	_, err = ParseColumns(nil)
	assert.Error(t, err)
}
