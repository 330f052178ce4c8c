package save

import (
	"bytes"
	"testing"

	"github.com/gogpu/thorvg"
)

func solidPixmap(w, h int, c thorvg.Color) *thorvg.Pixmap {
	pm := thorvg.NewPixmap(w, h)
	pm.Clear(c.ToFloat())
	return pm
}

func TestGIF_HeaderAndTrailer(t *testing.T) {
	frames := []GIFFrame{{Image: solidPixmap(4, 4, thorvg.RGB8(255, 0, 0)), DelayCentis: 10}}
	data, err := GIF(frames, false)
	if err != nil {
		t.Fatalf("GIF: %v", err)
	}
	if string(data[:6]) != "GIF89a" {
		t.Errorf("header = %q, want GIF89a", data[:6])
	}
	if data[len(data)-1] != 0x3b {
		t.Errorf("trailer = %#x, want 0x3b", data[len(data)-1])
	}
}

func TestGIF_NoFramesErrors(t *testing.T) {
	if _, err := GIF(nil, false); err == nil {
		t.Error("GIF with zero frames should return an error")
	}
}

func TestGIF_LoopEmitsNetscapeExtension(t *testing.T) {
	frames := []GIFFrame{
		{Image: solidPixmap(2, 2, thorvg.RGB8(0, 0, 0)), DelayCentis: 5},
		{Image: solidPixmap(2, 2, thorvg.RGB8(255, 255, 255)), DelayCentis: 5},
	}
	data, err := GIF(frames, true)
	if err != nil {
		t.Fatalf("GIF: %v", err)
	}
	if !bytes.Contains(data, []byte("NETSCAPE2.0")) {
		t.Error("loop=true should emit a NETSCAPE2.0 application extension")
	}
}

func TestGIF_NoLoopOmitsNetscapeExtension(t *testing.T) {
	frames := []GIFFrame{{Image: solidPixmap(2, 2, thorvg.RGB8(0, 0, 0)), DelayCentis: 5}}
	data, err := GIF(frames, false)
	if err != nil {
		t.Fatalf("GIF: %v", err)
	}
	if bytes.Contains(data, []byte("NETSCAPE2.0")) {
		t.Error("loop=false should not emit a NETSCAPE2.0 application extension")
	}
}

func TestBuildPalette_TransparentIndexReservedAndUnused(t *testing.T) {
	pm := solidPixmap(8, 8, thorvg.RGB8(10, 20, 30))
	pal := buildPalette(pm.Data(), nil, 8, 8)
	if pal.r[gifTransparentIndex] != 0 || pal.g[gifTransparentIndex] != 0 || pal.b[gifTransparentIndex] != 0 {
		t.Error("palette index 0 must stay reserved for transparency")
	}
}

func TestClosestPaletteIndex_PicksExactMatch(t *testing.T) {
	pm := solidPixmap(4, 4, thorvg.RGB8(200, 50, 75))
	pal := buildPalette(pm.Data(), nil, 4, 4)
	idx := closestPaletteIndex(pal, 200, 50, 75)
	if idx == gifTransparentIndex {
		t.Fatal("closestPaletteIndex should never return the reserved transparent index for an opaque color")
	}
	if pal.r[idx] != 200 || pal.g[idx] != 50 || pal.b[idx] != 75 {
		t.Errorf("closest palette color = (%d,%d,%d), want (200,50,75)", pal.r[idx], pal.g[idx], pal.b[idx])
	}
}

func TestPalettizeFrame_UnchangedPixelsGoTransparent(t *testing.T) {
	prev := solidPixmap(4, 4, thorvg.RGB8(10, 10, 10))
	cur := solidPixmap(4, 4, thorvg.RGB8(10, 10, 10))
	pal := buildPalette(cur.Data(), prev.Data(), 4, 4)

	indices := palettizeFrame(pal, cur.Data(), prev.Data(), 4, 4)
	for i, idx := range indices {
		if idx != gifTransparentIndex {
			t.Errorf("pixel %d: index = %d, want transparent (unchanged from previous frame)", i, idx)
		}
	}
}

func TestWriteLZWImage_RoundTripsThroughBitWriter(t *testing.T) {
	var buf bytes.Buffer
	indices := make([]uint8, 16)
	for i := range indices {
		indices[i] = uint8(i % 3)
	}
	writeLZWImage(&buf, indices)
	if buf.Len() == 0 {
		t.Fatal("writeLZWImage should produce non-empty output")
	}
	if buf.Bytes()[0] != gifBitDepth {
		t.Errorf("first byte (min code size) = %d, want %d", buf.Bytes()[0], gifBitDepth)
	}
	// last byte must be the image block terminator
	if buf.Bytes()[buf.Len()-1] != 0 {
		t.Error("writeLZWImage output should end with the block terminator byte")
	}
}

func TestSaveGIF_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.gif"
	frames := []GIFFrame{{Image: solidPixmap(4, 4, thorvg.RGB8(1, 2, 3)), DelayCentis: 8}}
	if err := SaveGIF(frames, path, false); err != nil {
		t.Fatalf("SaveGIF: %v", err)
	}
}
