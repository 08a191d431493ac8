package binary

import (
	"encoding/binary"
	"io"
)

// Encoding returns the byte order used for all fixed width encodings.
func Encoding() binary.ByteOrder {
	return binary.LittleEndian
}

func Write(w io.Writer, data interface{}) (err error) {
	return binary.Write(w, Encoding(), data)
}

func Read(r io.Reader, data interface{}) (err error) {
	return binary.Read(r, Encoding(), data)
}
