package scanning

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PlainText", func() {
	var (
		scanner     *PlainText
		data        []byte
		contentType string
		lines       []string
		err         error
	)

	BeforeEach(func() {
		scanner = NewPlainText()
		contentType = "text/plain"
	})

	JustBeforeEach(func() {
		lines, err = scanner.DetectLines(data, contentType)
	})

	When("the text has CRLF line endings and a trailing newline", func() {
		BeforeEach(func() {
			data = []byte("Robinson Malls\r\nCash\r\n\r\n200.00\r\n")
		})

		It("returns each line including blank ones", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"Robinson Malls", "Cash", "", "200.00"}))
		})
	})

	When("the upload is empty", func() {
		BeforeEach(func() {
			data = []byte{}
		})

		It("returns no lines", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(BeEmpty())
		})
	})

	When("the content type is generic binary", func() {
		BeforeEach(func() {
			contentType = "application/octet-stream"
			data = []byte("Total\n9.20")
		})

		It("treats the upload as text", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"Total", "9.20"}))
		})
	})

	When("the upload is an image", func() {
		BeforeEach(func() {
			contentType = "image/png"
			data = []byte("\x89PNG")
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("unsupported content type")))
		})
	})

	When("the upload is not UTF-8", func() {
		BeforeEach(func() {
			data = []byte{0xff, 0xfe, 0x00}
		})

		It("returns the error", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})
