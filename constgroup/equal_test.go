//go:build unit

package constgroup

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMemberValueEqual(t *testing.T) {
	t.Parallel()

	sharedFn := func() int { return 1 }
	otherFn := func() int { return 1 }

	type pair struct {
		Code  string
		Count int
	}

	tests := []struct {
		name      string
		member    any
		candidate any
		want      bool
	}{
		{
			name:      "equal ints",
			member:    3,
			candidate: 3,
			want:      true,
		},
		{
			name:      "different ints",
			member:    3,
			candidate: 4,
			want:      false,
		},
		{
			name:      "int versus string",
			member:    1,
			candidate: "1",
			want:      false,
		},
		{
			name:      "equal structs",
			member:    pair{Code: "BRL", Count: 2},
			candidate: pair{Code: "BRL", Count: 2},
			want:      true,
		},
		{
			name:      "equal decimals with different exponents",
			member:    decimal.RequireFromString("1.50"),
			candidate: decimal.RequireFromString("1.5"),
			want:      true,
		},
		{
			name:      "different decimals",
			member:    decimal.RequireFromString("1.50"),
			candidate: decimal.RequireFromString("1.51"),
			want:      false,
		},
		{
			name:      "decimal versus float",
			member:    decimal.RequireFromString("1.5"),
			candidate: 1.5,
			want:      false,
		},
		{
			name:      "same func value",
			member:    sharedFn,
			candidate: sharedFn,
			want:      true,
		},
		{
			name:      "different func values",
			member:    sharedFn,
			candidate: otherFn,
			want:      false,
		},
		{
			name:      "funcs with different types",
			member:    func() int { return 1 },
			candidate: func() string { return "1" },
			want:      false,
		},
		{
			name:      "func versus non-func",
			member:    sharedFn,
			candidate: 1,
			want:      false,
		},
		{
			name:      "non-func versus func",
			member:    1,
			candidate: sharedFn,
			want:      false,
		},
		{
			name:      "nil candidate",
			member:    1,
			candidate: nil,
			want:      false,
		},
		{
			name:      "both nil",
			member:    nil,
			candidate: nil,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, memberValueEqual(tt.member, tt.candidate))
		})
	}
}
