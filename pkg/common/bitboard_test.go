package common

import (
	"testing"
)

func TestPopCount(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  int
	}{
		{"empty", 0, 0},
		{"one", 1, 1},
		{"file", FileAMask, 8},
		{"rank", Rank5Mask, 8},
		{"full", ^uint64(0), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PopCount(tt.value); got != tt.want {
				t.Errorf("PopCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoreThanOne(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"far one", 1 << 60, false},
		{"two ones", 3, true},
		{"two ones apart", 1<<6 | 1<<25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreThanOne(tt.value); got != tt.want {
				t.Errorf("MoreThanOne() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMakeBitboard(t *testing.T) {
	var b = MakeBitboard(SquareD4, SquareE4, SquareD5, SquareE5)
	if PopCount(b) != 4 {
		t.Errorf("PopCount = %v, want 4", PopCount(b))
	}
	if got := BitboardString(b); got != "(d4,e4,d5,e5)" {
		t.Errorf("BitboardString = %v", got)
	}
}

func TestRelativeSquare(t *testing.T) {
	tests := []struct {
		name    string
		side    int
		sq      int
		maxRank int
		want    int
	}{
		{"white identity", SideWhite, SquareD1, Rank8, SquareD1},
		{"black mirror 8x8", SideBlack, SquareD1, Rank8, SquareD8},
		{"black mirror 7 ranks", SideBlack, SquareA1, Rank7, MakeSquare(FileA, Rank7)},
		{"black center", SideBlack, SquareE4, Rank8, SquareE5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeSquare(tt.side, tt.sq, tt.maxRank); got != tt.want {
				t.Errorf("RelativeSquare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"a1", SquareA1},
		{"h8", SquareH8},
		{"e4", SquareE4},
		{"-", SquareNone},
		{"i9", SquareNone},
		{"e", SquareNone},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := ParseSquare(tt.s); got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
