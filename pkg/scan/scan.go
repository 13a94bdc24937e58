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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	pqLocal "github.com/xitongsys/parquet-go-source/local"
	pqReader "github.com/xitongsys/parquet-go/reader"
	pqSource "github.com/xitongsys/parquet-go/source"

	"github.com/daviszhen/rowcmp/pkg/chunk"
	"github.com/daviszhen/rowcmp/pkg/common"
)

// Scanner reads key columns of a data file into column views, at most
// maxCnt rows per call. Supported formats: csv, parquet.
type Scanner struct {
	format    string
	colTyps   []common.LType
	colIndice []int

	pqFile pqSource.ParquetFile
	pq     *pqReader.ParquetReader

	dataFile *os.File
	reader   *csv.Reader
}

func NewScanner(
	path string,
	format string,
	colTyps []common.LType,
	colIndice []int,
) (*Scanner, error) {
	if len(colTyps) != len(colIndice) {
		return nil, fmt.Errorf("%d types for %d columns", len(colTyps), len(colIndice))
	}
	s := &Scanner{
		format:    format,
		colTyps:   common.CopyLTypes(colTyps...),
		colIndice: colIndice,
	}
	var err error
	switch format {
	case "parquet":
		s.pqFile, err = pqLocal.NewLocalFileReader(path)
		if err != nil {
			return nil, err
		}
		s.pq, err = pqReader.NewParquetColumnReader(s.pqFile, 1)
		if err != nil {
			return nil, err
		}
	case "csv":
		s.dataFile, err = os.OpenFile(path, os.O_RDONLY, 0755)
		if err != nil {
			return nil, err
		}
		s.reader = csv.NewReader(s.dataFile)
	default:
		return nil, fmt.Errorf("unknown data format %s", format)
	}
	return s, nil
}

func (s *Scanner) Types() []common.LType {
	return s.colTyps
}

// Read fills output with up to maxCnt rows. Card 0 means the file is
// drained.
func (s *Scanner) Read(output *chunk.Chunk, maxCnt int) error {
	output.Init(s.colTyps, maxCnt)
	switch s.format {
	case "parquet":
		return s.readParquet(output, maxCnt)
	case "csv":
		return s.readCsv(output, maxCnt)
	default:
		panic("usp format")
	}
}

func (s *Scanner) Close() error {
	switch s.format {
	case "csv":
		s.reader = nil
		return s.dataFile.Close()
	case "parquet":
		s.pq.ReadStop()
		return s.pqFile.Close()
	default:
		panic("usp format")
	}
}

func (s *Scanner) readParquet(output *chunk.Chunk, maxCnt int) error {
	rowCont := -1
	for j, idx := range s.colIndice {
		values, _, _, err := s.pq.ReadColumnByIndex(int64(idx), int64(maxCnt))
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		if rowCont < 0 {
			rowCont = len(values)
		} else if len(values) != rowCont {
			return fmt.Errorf("column %d has different count of values %d with previous columns %d",
				idx, len(values), rowCont)
		}

		vec := output.Data[j]
		for i := 0; i < len(values); i++ {
			//[row i, col j]
			// optional columns surface nulls as nil values
			if values[i] == nil {
				vec.SetValue(i, &chunk.Value{Typ: vec.Typ(), IsNull: true})
				continue
			}
			val, err := parquetColToValue(values[i], vec.Typ())
			if err != nil {
				return err
			}
			vec.SetValue(i, val)
		}
	}
	if rowCont < 0 {
		rowCont = 0
	}
	output.SetCard(rowCont)
	return nil
}

func (s *Scanner) readCsv(output *chunk.Chunk, maxCnt int) error {
	rowCont := 0
	for i := 0; i < maxCnt; i++ {
		//read line
		line, err := s.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		//fill fields into vectors
		for j, idx := range s.colIndice {
			if idx >= len(line) {
				return errors.New("no enough fields in the line")
			}
			field := line[idx]
			vec := output.Data[j]
			//[row i, col j] = field
			val, err := fieldToValue(field, vec.Typ())
			if err != nil {
				return err
			}
			vec.SetValue(i, val)
		}
		rowCont++
	}
	output.SetCard(rowCont)
	return nil
}

// fieldToValue parses one csv field. The empty field stands for NULL.
func fieldToValue(field string, lTyp common.LType) (*chunk.Value, error) {
	var err error
	val := &chunk.Value{
		Typ: lTyp,
	}
	if len(field) == 0 {
		val.IsNull = true
		return val, nil
	}
	switch lTyp.Id {
	case common.LTID_BOOLEAN:
		val.Bool, err = strconv.ParseBool(field)
		if err != nil {
			return nil, err
		}
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT, common.LTID_TIMESTAMP:
		val.I64, err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, err
		}
	case common.LTID_HUGEINT:
		h, err := common.HugeintFromString(field)
		if err != nil {
			return nil, err
		}
		val.I64 = h.Upper
		val.I64_1 = int64(h.Lower)
	case common.LTID_UBIGINT:
		val.U64, err = strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, err
		}
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		val.F64, err = strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
	case common.LTID_VARCHAR:
		val.Str = field
	case common.LTID_DATE:
		d, err := time.Parse(time.DateOnly, field)
		if err != nil {
			return nil, err
		}
		val.I64 = int64(d.Year())
		val.I64_1 = int64(d.Month())
		val.I64_2 = int64(d.Day())
	case common.LTID_DECIMAL:
		val.Str = field
	default:
		panic("usp")
	}
	return val, nil
}

func parquetColToValue(field any, lTyp common.LType) (*chunk.Value, error) {
	val := &chunk.Value{
		Typ: lTyp,
	}
	switch lTyp.Id {
	case common.LTID_BOOLEAN:
		b, ok := field.(bool)
		if !ok {
			panic("usp")
		}
		val.Bool = b
	case common.LTID_DATE:
		if _, ok := field.(int32); !ok {
			panic("usp")
		}

		d := time.Date(1970, 1, int(1+field.(int32)), 0, 0, 0, 0, time.UTC)
		val.I64 = int64(d.Year())
		val.I64_1 = int64(d.Month())
		val.I64_2 = int64(d.Day())
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT, common.LTID_TIMESTAMP:
		switch fVal := field.(type) {
		case int32:
			val.I64 = int64(fVal)
		case int64:
			val.I64 = fVal
		default:
			panic("usp")
		}
	case common.LTID_HUGEINT:
		var v int64
		switch fVal := field.(type) {
		case int32:
			v = int64(fVal)
		case int64:
			v = fVal
		default:
			panic("usp")
		}
		// sign extend into the upper half
		val.I64_1 = v
		if v < 0 {
			val.I64 = -1
		}
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		switch fVal := field.(type) {
		case float32:
			val.F64 = float64(fVal)
		case float64:
			val.F64 = fVal
		default:
			panic("usp")
		}
	case common.LTID_VARCHAR:
		if _, ok := field.(string); !ok {
			panic("usp")
		}

		val.Str = field.(string)
	case common.LTID_DECIMAL:
		p10 := int64(1)
		for i := 0; i < lTyp.Scale; i++ {
			p10 *= 10
		}
		switch v := field.(type) {
		case int32:
			val.I64 = int64(v) / p10
			val.I64_1 = int64(v) % p10
		case int64:
			val.I64 = v / p10
			val.I64_1 = v % p10
		default:
			panic("usp")
		}
	default:
		panic("usp")
	}
	return val, nil
}
