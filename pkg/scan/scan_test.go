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

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/rowcmp/pkg/chunk"
	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/util"
)

func writeCsv(t *testing.T, cont string) string {
	fpath := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(fpath, []byte(cont), 0644))
	return fpath
}

func Test_csvScan(t *testing.T) {
	fpath := writeCsv(t,
		"1,apple,2024-01-01\n"+
			"2,,2024-01-02\n"+
			"3,cherry,\n")
	typs := []common.LType{
		common.IntegerType(),
		common.VarcharType(),
		common.DateType(),
	}
	s, err := NewScanner(fpath, "csv", typs, []int{0, 1, 2})
	require.NoError(t, err)
	defer s.Close()

	data := &chunk.Chunk{}
	require.NoError(t, s.Read(data, util.DefaultVectorSize))
	require.Equal(t, 3, data.Card())

	assert.Equal(t, "1", data.GetValue(0, 0).String())
	assert.Equal(t, "apple", data.GetValue(1, 0).String())
	assert.Equal(t, "2024-01-01", data.GetValue(2, 0).String())
	// empty field reads as NULL
	assert.True(t, data.GetValue(1, 1).IsNull)
	assert.True(t, data.GetValue(2, 2).IsNull)

	// drained
	next := &chunk.Chunk{}
	require.NoError(t, s.Read(next, util.DefaultVectorSize))
	assert.Equal(t, 0, next.Card())
}

func Test_csvScanColumnSubset(t *testing.T) {
	fpath := writeCsv(t,
		"a,10,x\n"+
			"b,20,y\n")
	typs := []common.LType{common.BigintType(), common.VarcharType()}
	s, err := NewScanner(fpath, "csv", typs, []int{1, 0})
	require.NoError(t, err)
	defer s.Close()

	data := &chunk.Chunk{}
	require.NoError(t, s.Read(data, util.DefaultVectorSize))
	require.Equal(t, 2, data.Card())
	assert.Equal(t, "10", data.GetValue(0, 0).String())
	assert.Equal(t, "b", data.GetValue(1, 1).String())
}

func Test_fieldToValue(t *testing.T) {
	val, err := fieldToValue("-12", common.IntegerType())
	require.NoError(t, err)
	assert.Equal(t, int64(-12), val.I64)

	val, err = fieldToValue("3.25", common.DoubleType())
	require.NoError(t, err)
	assert.Equal(t, 3.25, val.F64)

	val, err = fieldToValue("", common.IntegerType())
	require.NoError(t, err)
	assert.True(t, val.IsNull)

	_, err = fieldToValue("nope", common.IntegerType())
	assert.Error(t, err)

	val, err = fieldToValue("1700000000000000", common.TimestampType())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000000), val.I64)

	// hugeint beyond the 64-bit range
	val, err = fieldToValue("18446744073709551617", common.HugeintType())
	require.NoError(t, err)
	assert.Equal(t, int64(1), val.I64)
	assert.Equal(t, int64(1), val.I64_1)

	val, err = fieldToValue("-2", common.HugeintType())
	require.NoError(t, err)
	assert.Equal(t, int64(-1), val.I64)
	assert.Equal(t, int64(-2), val.I64_1)

	_, err = fieldToValue("huge", common.HugeintType())
	assert.Error(t, err)
}

func Test_csvScanHugeint(t *testing.T) {
	fpath := writeCsv(t,
		"-5\n0\n18446744073709551616\n")
	s, err := NewScanner(fpath, "csv",
		[]common.LType{common.HugeintType()}, []int{0})
	require.NoError(t, err)
	defer s.Close()

	data := &chunk.Chunk{}
	require.NoError(t, s.Read(data, util.DefaultVectorSize))
	require.Equal(t, 3, data.Card())
	assert.Equal(t, "-5", data.GetValue(0, 0).String())
	assert.Equal(t, "18446744073709551616", data.GetValue(0, 2).String())
}

func Test_scannerErrors(t *testing.T) {
	_, err := NewScanner("/no/such/file.csv", "csv",
		[]common.LType{common.IntegerType()}, []int{0})
	assert.Error(t, err)

	fpath := writeCsv(t, "1\n")
	_, err = NewScanner(fpath, "orc",
		[]common.LType{common.IntegerType()}, []int{0})
	assert.Error(t, err)

	_, err = NewScanner(fpath, "csv",
		[]common.LType{common.IntegerType()}, []int{0, 1})
	assert.Error(t, err)

	// line too short for the requested column
	s, err := NewScanner(fpath, "csv",
		[]common.LType{common.IntegerType()}, []int{5})
	require.NoError(t, err)
	defer s.Close()
	data := &chunk.Chunk{}
	assert.Error(t, s.Read(data, util.DefaultVectorSize))
}
