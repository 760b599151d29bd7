package scanning

import (
	"bytes"
	"image"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("toPNG", func() {
	var pngData []byte

	BeforeEach(func() {
		var buf bytes.Buffer
		Expect(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)))).To(Succeed())
		pngData = buf.Bytes()
	})

	When("the upload is already PNG", func() {
		It("returns the data unchanged", func() {
			out, err := toPNG(pngData, "image/png")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(pngData))
		})
	})

	When("the declared type does not match the data", func() {
		It("decodes by content and re-encodes as PNG", func() {
			out, err := toPNG(pngData, "image/jpeg")
			Expect(err).NotTo(HaveOccurred())
			_, format, err := image.Decode(bytes.NewReader(out))
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal("png"))
		})
	})

	When("the data is not an image", func() {
		It("returns the error", func() {
			_, err := toPNG([]byte("not an image"), "image/jpeg")
			Expect(err).To(MatchError(ContainSubstring("unsupported image format")))
		})
	})
})

var _ = Describe("isHEIC", func() {
	It("detects the ftyp brand", func() {
		data := append([]byte{0, 0, 0, 24}, []byte("ftypheic0000")...)
		Expect(isHEIC(data, "application/octet-stream")).To(BeTrue())
	})

	It("detects the MIME type", func() {
		Expect(isHEIC(nil, "image/heif")).To(BeTrue())
	})

	It("rejects other data", func() {
		Expect(isHEIC([]byte("short"), "image/png")).To(BeFalse())
	})
})
