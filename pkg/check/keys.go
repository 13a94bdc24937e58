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
	"strconv"
	"strings"

	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/compare"
)

// ParseKeyTypes parses a whitespace separated key spec. Each entry is
// a type name with an optional direction suffix, e.g.
//
//	"int varchar:desc decimal(18,2) date:asc"
func ParseKeyTypes(spec string) ([]common.LType, []compare.OrderType, error) {
	typs := make([]common.LType, 0)
	orders := make([]compare.OrderType, 0)
	for _, entry := range strings.Fields(spec) {
		name := entry
		order := compare.OT_ASC
		if idx := strings.LastIndex(entry, ":"); idx >= 0 {
			name = entry[:idx]
			switch entry[idx+1:] {
			case "asc":
				order = compare.OT_ASC
			case "desc":
				order = compare.OT_DESC
			default:
				return nil, nil, fmt.Errorf("unknown direction %s", entry[idx+1:])
			}
		}
		typ, err := parseType(name)
		if err != nil {
			return nil, nil, err
		}
		typs = append(typs, typ)
		orders = append(orders, order)
	}
	if len(typs) == 0 {
		return nil, nil, fmt.Errorf("empty key spec")
	}
	return typs, orders, nil
}

func parseType(name string) (common.LType, error) {
	switch name {
	case "bool", "boolean":
		return common.BooleanType(), nil
	case "tinyint":
		return common.TinyintType(), nil
	case "smallint":
		return common.SmallintType(), nil
	case "int", "integer":
		return common.IntegerType(), nil
	case "bigint":
		return common.BigintType(), nil
	case "ubigint":
		return common.UbigintType(), nil
	case "hugeint":
		return common.HugeintType(), nil
	case "float":
		return common.FloatType(), nil
	case "double":
		return common.DoubleType(), nil
	case "varchar", "string":
		return common.VarcharType(), nil
	case "date":
		return common.DateType(), nil
	case "timestamp":
		return common.TimestampType(), nil
	case "interval":
		// a month is not a fixed number of days, no total order exists
		return common.LType{}, fmt.Errorf("interval cannot be a sort key")
	}
	if strings.HasPrefix(name, "decimal(") && strings.HasSuffix(name, ")") {
		args := strings.Split(name[len("decimal("):len(name)-1], ",")
		if len(args) != 2 {
			return common.LType{}, fmt.Errorf("bad decimal type %s", name)
		}
		width, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return common.LType{}, err
		}
		scale, err := strconv.Atoi(strings.TrimSpace(args[1]))
		if err != nil {
			return common.LType{}, err
		}
		return common.DecimalType(width, scale), nil
	}
	return common.LType{}, fmt.Errorf("unknown type %s", name)
}

func ParseNullOrder(s string) (compare.OrderByNullType, error) {
	switch s {
	case "", "nulls_first":
		return compare.OBNT_NULLS_FIRST, nil
	case "nulls_last":
		return compare.OBNT_NULLS_LAST, nil
	}
	return compare.OBNT_INVALID, fmt.Errorf("unknown null order %s", s)
}

// ParseColumns maps the configured column list to file column indices.
func ParseColumns(cols []string) ([]int, error) {
	ret := make([]int, 0, len(cols))
	for _, col := range cols {
		idx, err := strconv.Atoi(col)
		if err != nil {
			return nil, fmt.Errorf("bad column index %s", col)
		}
		if idx < 0 {
			return nil, fmt.Errorf("bad column index %s", col)
		}
		ret = append(ret, idx)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("no key columns")
	}
	return ret, nil
}
