package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// maxPPMLineLength is the longest line plain PPM readers are required to accept
const maxPPMLineLength = 70

// WritePPM writes the canvas as a plain (P3) PPM image
func WritePPM(w io.Writer, c *Canvas) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}

	for y := 0; y < c.height; y++ {
		lineLength := 0
		for x := 0; x < c.width; x++ {
			rgba := ToRGBA(c.At(x, y))
			for _, v := range [3]uint8{rgba.R, rgba.G, rgba.B} {
				token := strconv.Itoa(int(v))
				if lineLength > 0 && lineLength+1+len(token) > maxPPMLineLength {
					bw.WriteByte('\n')
					lineLength = 0
				}
				if lineLength > 0 {
					bw.WriteByte(' ')
					lineLength++
				}
				bw.WriteString(token)
				lineLength += len(token)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
