package viewport

import (
	"errors"
	"image"
	"testing"
)

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		w, h    int
		wantErr bool
	}{
		{"valid", 12, 4, 3, false},
		{"exact buffer", 1, 1, 1, false},
		{"oversized buffer truncated", 20, 4, 3, false},
		{"short buffer", 11, 4, 3, true},
		{"zero width", 12, 0, 3, true},
		{"zero height", 12, 4, 0, true},
		{"negative width", 12, -4, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(make([]float64, tt.samples), tt.w, tt.h)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidImage) {
					t.Fatalf("NewImage() error = %v, want ErrInvalidImage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewImage() error = %v", err)
			}
			if img.Width() != tt.w || img.Height() != tt.h {
				t.Errorf("dimensions = %dx%d, want %dx%d", img.Width(), img.Height(), tt.w, tt.h)
			}
			if got := len(img.Samples()); got != tt.w*tt.h {
				t.Errorf("len(Samples()) = %d, want %d", got, tt.w*tt.h)
			}
		})
	}
}

func TestImageSample(t *testing.T) {
	img, err := NewImage([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 1},
		{2, 0, 3},
		{0, 1, 4},
		{2, 1, 6},
		{-1, 0, 0},
		{3, 0, 0},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := img.Sample(tt.x, tt.y); got != tt.want {
			t.Errorf("Sample(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if got, want := img.Bounds(), R(0, 0, 3, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestFromGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []uint8{10, 20, 30, 40}

	img, err := FromGray(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{10, 20, 30, 40}
	for i, w := range want {
		if got := img.Samples()[i]; got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestToGray(t *testing.T) {
	img, err := NewImage([]float64{-5, 0, 127.4, 127.6, 255, 300}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	gray := img.ToGray()
	want := []uint8{0, 0, 127, 128, 255, 255}
	for i, w := range want {
		if got := gray.Pix[i]; got != w {
			t.Errorf("pixel %d = %d, want %d", i, got, w)
		}
	}
}

func TestFromGraySubImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	sub := src.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)

	img, err := FromGray(sub)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", img.Width(), img.Height())
	}
	want := []float64{5, 6, 9, 10}
	for i, w := range want {
		if got := img.Samples()[i]; got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}
