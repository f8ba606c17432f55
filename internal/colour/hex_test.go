package colour

import (
	"errors"
	"strconv"
	"testing"
)

func TestEncodeHex(t *testing.T) {
	c := Colour{A: 0x80, R: 0x0A, G: 0xBC, B: 0x01}

	tests := []struct {
		name string
		opts HexOptions
		want string
	}{
		{
			name: "defaults",
			opts: DefaultHexOptions(),
			want: "#0ABC01",
		},
		{
			name: "no marker",
			opts: HexOptions{},
			want: "0ABC01",
		},
		{
			name: "alpha with marker",
			opts: HexOptions{IncludeAlpha: true, LeadingMarker: true},
			want: "#800ABC01",
		},
		{
			name: "alpha without marker",
			opts: HexOptions{IncludeAlpha: true},
			want: "800ABC01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeHex(c, tt.opts)
			if got != tt.want {
				t.Errorf("EncodeHex() = %q, want %q", got, tt.want)
			}
			if len(got) != tt.opts.Len() {
				t.Errorf("len(EncodeHex()) = %d, want %d", len(got), tt.opts.Len())
			}
		})
	}
}

func TestEncodeHexLength(t *testing.T) {
	colours := []Colour{{}, Opaque(255, 255, 255), {A: 1, R: 2, G: 3, B: 4}}
	for _, c := range colours {
		for _, alpha := range []bool{false, true} {
			for _, marker := range []bool{false, true} {
				opts := HexOptions{IncludeAlpha: alpha, LeadingMarker: marker}
				want := 6
				if marker {
					want++
				}
				if alpha {
					want += 2
				}
				if got := len(EncodeHex(c, opts)); got != want {
					t.Errorf("len(EncodeHex(%v, %+v)) = %d, want %d", c, opts, got, want)
				}
			}
		}
	}
}

func TestColourHex(t *testing.T) {
	if got := Opaque(0x33, 0x66, 0x99).Hex(); got != "#336699" {
		t.Errorf("Hex() = %q, want %q", got, "#336699")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Colour
	}{
		{
			name:  "with marker",
			input: "#336699",
			want:  Colour{A: 255, R: 0x33, G: 0x66, B: 0x99},
		},
		{
			name:  "without marker",
			input: "336699",
			want:  Colour{A: 255, R: 0x33, G: 0x66, B: 0x99},
		},
		{
			name:  "lowercase",
			input: "#abcdef",
			want:  Colour{A: 255, R: 0xAB, G: 0xCD, B: 0xEF},
		},
		{
			name:  "mixed case",
			input: "aBcDeF",
			want:  Colour{A: 255, R: 0xAB, G: 0xCD, B: 0xEF},
		},
		{
			// The first pair is read as red, not alpha.
			name:  "eight digits",
			input: "#80112233",
			want:  Colour{A: 255, R: 0x80, G: 0x11, B: 0x22},
		},
		{
			name:  "trailing text ignored",
			input: "#000000zz",
			want:  Colour{A: 255},
		},
		{
			name:  "white",
			input: "FFFFFF",
			want:  Colour{A: 255, R: 255, G: 255, B: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOff   int
	}{
		{name: "too short", input: "1234"},
		{name: "empty", input: ""},
		{name: "marker only", input: "#"},
		{name: "short after marker", input: "#12345"},
		{name: "non-hex red", input: "GG0000", wantField: "red", wantOff: 0},
		{name: "non-hex green", input: "#00GG00", wantField: "green", wantOff: 2},
		{name: "non-hex blue", input: "0000 1", wantField: "blue", wantOff: 4},
		{name: "sign", input: "+10000", wantField: "red", wantOff: 0},
		{name: "double marker", input: "##112233", wantField: "red", wantOff: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			if err == nil {
				t.Fatalf("ParseHex(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("errors.Is(err, ErrInvalidHex) = false for %v", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a *FormatError", err)
			}
			if fe.Input != tt.input {
				t.Errorf("Input = %q, want %q", fe.Input, tt.input)
			}
			if fe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", fe.Field, tt.wantField)
			}
			if fe.Offset != tt.wantOff {
				t.Errorf("Offset = %d, want %d", fe.Offset, tt.wantOff)
			}
			if tt.wantField != "" && !errors.Is(err, strconv.ErrSyntax) {
				t.Errorf("expected wrapped strconv.ErrSyntax, got %v", err)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				c := Colour{A: uint8(r ^ g), R: uint8(r), G: uint8(g), B: uint8(b)}
				got, err := ParseHex(EncodeHex(c, DefaultHexOptions()))
				if err != nil {
					t.Fatalf("round trip of %v: %v", c, err)
				}
				want := c.WithAlpha(255)
				if got != want {
					t.Fatalf("round trip of %v = %v, want %v", c, got, want)
				}
			}
		}
	}
}

func TestMustParseHex(t *testing.T) {
	if got := MustParseHex("#FF0000"); got != Opaque(255, 0, 0) {
		t.Errorf("MustParseHex() = %v, want red", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseHex did not panic on malformed input")
		}
	}()
	MustParseHex("nope")
}
