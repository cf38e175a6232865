package round_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixnum/num"
	"github.com/calebcase/fixnum/round"
)

func mk(neg bool, c int64, exp int) num.Num {
	return num.New(neg, big.NewInt(c), exp)
}

var modes = []round.Mode{
	round.ToZero,
	round.AwayFromZero,
	round.HalfEven,
	round.HalfAway,
	round.ToPositive,
	round.ToNegative,
}

func TestRound(t *testing.T) {
	type TC struct {
		name string
		x    num.Num
		exp  int
		mode round.Mode
		want num.Num
	}

	tcs := []TC{
		// 5 is exactly between 4 and 6; the unit digit of 4 is even.
		{
			name: "tie to even",
			x:    mk(false, 0b101, 0),
			exp:  1,
			mode: round.HalfEven,
			want: mk(false, 0b10, 1),
		},
		{
			name: "tie to even stays",
			x:    mk(false, 0b1001, 0),
			exp:  1,
			mode: round.HalfEven,
			want: mk(false, 0b100, 1),
		},
		{
			name: "tie away",
			x:    mk(false, 0b101, 0),
			exp:  1,
			mode: round.HalfAway,
			want: mk(false, 0b11, 1),
		},
		{
			name: "above half",
			x:    mk(false, 0b1011, 0),
			exp:  2,
			mode: round.HalfEven,
			want: mk(false, 0b11, 2),
		},
		{
			name: "below half",
			x:    mk(false, 0b101, 0),
			exp:  2,
			mode: round.HalfAway,
			want: mk(false, 0b1, 2),
		},
		{
			name: "down",
			x:    mk(false, 0b11, 0),
			exp:  1,
			mode: round.ToZero,
			want: mk(false, 0b1, 1),
		},
		{
			name: "up",
			x:    mk(false, 0b11, 0),
			exp:  1,
			mode: round.AwayFromZero,
			want: mk(false, 0b10, 1),
		},
		{
			name: "negative down",
			x:    mk(true, 0b11, 0),
			exp:  1,
			mode: round.ToZero,
			want: mk(true, 0b1, 1),
		},
		{
			name: "negative up",
			x:    mk(true, 0b11, 0),
			exp:  1,
			mode: round.AwayFromZero,
			want: mk(true, 0b10, 1),
		},
		{
			name: "ceiling",
			x:    mk(false, 0b11, 0),
			exp:  1,
			mode: round.ToPositive,
			want: mk(false, 0b10, 1),
		},
		{
			name: "ceiling negative truncates",
			x:    mk(true, 0b11, 0),
			exp:  1,
			mode: round.ToPositive,
			want: mk(true, 0b1, 1),
		},
		{
			name: "floor",
			x:    mk(false, 0b11, 0),
			exp:  1,
			mode: round.ToNegative,
			want: mk(false, 0b1, 1),
		},
		{
			name: "floor negative moves away",
			x:    mk(true, 0b11, 0),
			exp:  1,
			mode: round.ToNegative,
			want: mk(true, 0b10, 1),
		},
		{
			name: "fractional target",
			x:    mk(false, 0b101, -2), // 1.25
			exp:  -1,
			mode: round.HalfEven,
			want: mk(false, 0b10, -1), // 1.0
		},
		{
			name: "truncation to zero keeps sign",
			x:    mk(true, 0b1, 0),
			exp:  3,
			mode: round.ToZero,
			want: mk(true, 0, 3),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			ctx, err := round.New(tc.exp, tc.mode)
			require.NoError(t, err)

			got := ctx.Round(tc.x)
			t.Logf("got: %s", spew.Sdump(got))

			require.Equal(t, tc.want.String(), got.String())
			require.Equal(t, tc.exp, got.Exp())
		})
	}
}

func TestRoundExact(t *testing.T) {
	// A value already representable at the target position must round
	// to itself under every mode.
	xs := []num.Num{
		mk(false, 0b101, 1),
		mk(true, 0b101, 1),
		mk(false, 0b1, 4),
		mk(false, 0b1000, -2), // trailing zeros below the target
		mk(false, 0, 0),
		mk(true, 0, -5),
	}

	for i, x := range xs {
		for _, mode := range modes {
			t.Run(fmt.Sprintf("[%d]%s/%s", i, x, mode), func(t *testing.T) {
				ctx, err := round.New(1, mode)
				require.NoError(t, err)

				got := ctx.Round(x)

				require.True(t, got.Equiv(x))
				require.Equal(t, 1, got.Exp())
				require.Equal(t, x.Negative(), got.Negative())
			})
		}
	}
}

func TestRoundZero(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			ctx, err := round.New(-3, mode)
			require.NoError(t, err)

			pos := ctx.Round(mk(false, 0, 7))
			require.True(t, pos.IsZero())
			require.False(t, pos.Negative())
			require.Equal(t, -3, pos.Exp())

			neg := ctx.Round(mk(true, 0, 7))
			require.True(t, neg.IsZero())
			require.True(t, neg.Negative())
			require.Equal(t, -3, neg.Exp())
		})
	}
}

func TestRoundToPrecision(t *testing.T) {
	type TC struct {
		name string
		x    num.Num
		p    int
		mode round.Mode
		want num.Num
	}

	tcs := []TC{
		{
			name: "exact fit",
			x:    mk(false, 0b111, 0),
			p:    3,
			mode: round.HalfEven,
			want: mk(false, 0b111, 0),
		},
		{
			name: "padding up",
			x:    mk(false, 0b111, 0),
			p:    5,
			mode: round.HalfEven,
			want: mk(false, 0b11100, -2),
		},
		{
			name: "carry into the next position",
			x:    mk(false, 0b111, 0),
			p:    2,
			mode: round.HalfEven,
			want: mk(false, 0b10, 2),
		},
		{
			name: "single digit",
			x:    mk(false, 0b101, 0),
			p:    1,
			mode: round.HalfAway,
			want: mk(false, 0b1, 2),
		},
		{
			name: "tie away carries",
			x:    mk(false, 0b110, 0),
			p:    1,
			mode: round.HalfAway,
			want: mk(false, 0b1, 3),
		},
		{
			name: "negative truncation",
			x:    mk(true, 0b1011, 0),
			p:    2,
			mode: round.ToZero,
			want: mk(true, 0b10, 2),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			ctx, err := round.NewWithPrecision(tc.p, tc.mode)
			require.NoError(t, err)

			got := ctx.Round(tc.x)

			require.Equal(t, tc.want.String(), got.String())
			require.LessOrEqual(t, got.P(), tc.p)
		})
	}

	t.Run("zero passes through", func(t *testing.T) {
		ctx, err := round.NewWithPrecision(4, round.HalfEven)
		require.NoError(t, err)

		got := ctx.Round(mk(true, 0, 2))
		require.True(t, got.IsZero())
		require.True(t, got.Negative())
		require.Equal(t, 2, got.Exp())
	})
}

func TestContextErrors(t *testing.T) {
	t.Run("invalid mode", func(t *testing.T) {
		_, err := round.New(0, round.Mode(42))
		require.Error(t, err)

		_, err = round.NewWithPrecision(3, round.Mode(42))
		require.Error(t, err)
	})

	t.Run("invalid precision", func(t *testing.T) {
		_, err := round.NewWithPrecision(0, round.HalfEven)
		require.Error(t, err)

		_, err = round.NewWithPrecision(-3, round.HalfEven)
		require.Error(t, err)
	})
}

func TestModeString(t *testing.T) {
	for _, mode := range modes {
		require.NotEqual(t, "invalid", mode.String())
	}
	require.Equal(t, "invalid", round.Mode(42).String())
}
