// Package imagemeta reads the format, pixel size and print density of uploaded
// design files without decoding the full image.
package imagemeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	_ "image/jpeg" // registers the JPEG header decoder
	_ "image/png"  // registers the PNG header decoder
	"math"
)

// DefaultDensity is reported when a file carries no resolution header.
const DefaultDensity = 72

const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

var ErrUnsupportedFormat = errors.New("file is not a PNG or JPEG image")

// Metadata describes an image file.
type Metadata struct {
	Format   string
	WidthPx  int
	HeightPx int
	Density  int
}

// ContentType is the MIME type matching the format.
func (m Metadata) ContentType() string {
	if m.Format == FormatPNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Extension is the file suffix matching the format.
func (m Metadata) Extension() string {
	if m.Format == FormatPNG {
		return ".png"
	}
	return ".jpg"
}

// Inspect reads the header of a PNG or JPEG file. Density comes from the pHYs
// chunk of a PNG or the JFIF segment of a JPEG.
func Inspect(data []byte) (Metadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Metadata{}, ErrUnsupportedFormat
	}

	meta := Metadata{Format: format, WidthPx: cfg.Width, HeightPx: cfg.Height, Density: DefaultDensity}
	var dpi int
	switch format {
	case FormatPNG:
		dpi = pngDensity(data)
	case FormatJPEG:
		dpi = jfifDensity(data)
	default:
		return Metadata{}, ErrUnsupportedFormat
	}
	if dpi > 0 {
		meta.Density = dpi
	}
	return meta, nil
}

// pngDensity walks the chunks ahead of the image data looking for pHYs.
func pngDensity(data []byte) int {
	const signatureLen = 8
	pos := signatureLen
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos:]))
		kind := string(data[pos+4 : pos+8])
		body := pos + 8
		if body+length > len(data) {
			return 0
		}

		switch kind {
		case "pHYs":
			if length < 9 {
				return 0
			}
			perUnit := binary.BigEndian.Uint32(data[body:])
			// unit 1 is pixels per metre, 0 only gives the aspect ratio.
			if data[body+8] != 1 {
				return 0
			}
			return int(math.Round(float64(perUnit) * 0.0254))
		case "IDAT", "IEND":
			return 0
		}

		pos = body + length + 4 // chunk CRC
	}
	return 0
}

// jfifDensity reads the APP0 segment that follows the start-of-image marker.
func jfifDensity(data []byte) int {
	pos := 2 // SOI
	for pos+4 <= len(data) && data[pos] == 0xFF {
		marker := data[pos+1]
		length := int(binary.BigEndian.Uint16(data[pos+2:]))
		body := pos + 4
		if length < 2 || pos+2+length > len(data) {
			return 0
		}

		// APP0 carries JFIF, any other APPn may come before it.
		if marker == 0xE0 && length >= 16 && bytes.Equal(data[body:body+5], []byte("JFIF\x00")) {
			units := data[body+7]
			x := int(binary.BigEndian.Uint16(data[body+8:]))
			switch units {
			case 1:
				return x
			case 2:
				return int(math.Round(float64(x) * 2.54))
			default:
				return 0
			}
		}
		if marker < 0xE0 || marker > 0xEF {
			return 0
		}

		pos += 2 + length
	}
	return 0
}
