// Copyright 2017 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bigint

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

// runBenches benchmarks fn over random values of each requested decimal
// digit count, half of them negative.
func runBenches(b *testing.B, numDigits []int, fn func(*testing.B, []*BigInt)) {
	for _, d := range numDigits {
		rng := rand.New(rand.NewSource(int64(d)))
		nums := make([]*BigInt, 500)
		for i := range nums {
			var buf bytes.Buffer
			if rng.Intn(2) == 0 {
				buf.WriteByte('-')
			}
			buf.WriteByte('1' + byte(rng.Intn(9)))
			for j := 1; j < d; j++ {
				buf.WriteByte('0' + byte(rng.Intn(10)))
			}
			var err error
			nums[i], err = NewFromString(buf.String(), 10)
			if err != nil {
				b.Fatal(err)
			}
		}
		b.Run(fmt.Sprintf("digits=%d", d), func(b *testing.B) {
			fn(b, nums)
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	runBenches(b, []int{9, 90, 900}, func(b *testing.B, nums []*BigInt) {
		z := new(BigInt)
		for i := 0; i < b.N; i++ {
			z.Add(nums[i%len(nums)], nums[(i+1)%len(nums)])
		}
	})
}

func BenchmarkMul(b *testing.B) {
	runBenches(b, []int{9, 90, 900}, func(b *testing.B, nums []*BigInt) {
		z := new(BigInt)
		for i := 0; i < b.N; i++ {
			z.Mul(nums[i%len(nums)], nums[(i+1)%len(nums)])
		}
	})
}

func BenchmarkQuo(b *testing.B) {
	runBenches(b, []int{9, 90, 900}, func(b *testing.B, nums []*BigInt) {
		z := new(BigInt)
		for i := 0; i < b.N; i++ {
			y := nums[(i+1)%len(nums)]
			if y.Sign() == 0 {
				continue
			}
			if _, err := z.Quo(nums[i%len(nums)], y); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkText(b *testing.B) {
	runBenches(b, []int{9, 90}, func(b *testing.B, nums []*BigInt) {
		for i := 0; i < b.N; i++ {
			if _, err := nums[i%len(nums)].Text(16, false); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSetString(b *testing.B) {
	runBenches(b, []int{9, 90}, func(b *testing.B, nums []*BigInt) {
		strs := make([]string, len(nums))
		for i, n := range nums {
			strs[i] = n.String()
		}
		b.ResetTimer()
		z := new(BigInt)
		for i := 0; i < b.N; i++ {
			if _, err := z.SetString(strs[i%len(strs)], 10); err != nil {
				b.Fatal(err)
			}
		}
	})
}
