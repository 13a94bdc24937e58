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
	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/util"
)

type CompareOp[T any] interface {
	operation(left, right *T) bool
}

// <
type lessOp[T ~int8 | ~int16 | ~int32 | ~int64 |
	~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
}

func (e lessOp[T]) operation(left, right *T) bool {
	return *left < *right
}

// bool: false sorts before true
type lessBoolOp struct {
}

func (e lessBoolOp) operation(left, right *bool) bool {
	return !*left && *right
}

// float. NaN sorts greatest so floats keep a total order
type lessFloatOp[T ~float32 | ~float64] struct {
}

func (e lessFloatOp[T]) operation(left, right *T) bool {
	return util.GreaterFloat[T](*right, *left)
}

// String
type lessStrOp struct {
}

func (e lessStrOp) operation(left, right *common.String) bool {
	return left.Less(right)
}

// Date
type lessDateOp struct {
}

func (e lessDateOp) operation(left, right *common.Date) bool {
	return left.Less(right)
}

// Decimal
type lessDecimalOp struct {
}

func (e lessDecimalOp) operation(left, right *common.Decimal) bool {
	return left.Less(right)
}

// Hugeint
type lessHugeintOp struct {
}

func (e lessHugeintOp) operation(left, right *common.Hugeint) bool {
	return left.Less(right)
}
