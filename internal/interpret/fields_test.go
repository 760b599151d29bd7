package interpret

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractMerchantName", func() {
	var (
		lines Lines
		name  string
		ok    bool
	)

	JustBeforeEach(func() {
		name, ok = extractMerchantName(lines)
	})

	When("a line names a business designation", func() {
		BeforeEach(func() {
			lines = Lines{"12/05/2024", "Thank you", "  ACME Supermarket  "}
		})

		It("returns that line trimmed", func() {
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("ACME Supermarket"))
		})
	})

	When("the keyword line comes after a plausible header line", func() {
		BeforeEach(func() {
			lines = Lines{"Juan Dela Cruz", "Robinson Malls"}
		})

		It("prefers the keyword line", func() {
			Expect(name).To(Equal("Robinson Malls"))
		})
	})

	When("keywords differ only in case", func() {
		BeforeEach(func() {
			lines = Lines{"corner grocery"}
		})

		It("still matches", func() {
			Expect(name).To(Equal("corner grocery"))
		})
	})

	When("no line names a business", func() {
		BeforeEach(func() {
			lines = Lines{"RECEIPT #88", "05/01/2024", "10:30", "ok", "  Juan's Bakery ", "Later Line"}
		})

		It("returns the first plausible header line", func() {
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("Juan's Bakery"))
		})
	})

	When("the plausible line is past the header lines", func() {
		BeforeEach(func() {
			lines = Lines{"hi", "12:00", "Invoice", "", "xy", "Juan's Bakery"}
		})

		It("falls back to the first line verbatim", func() {
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("hi"))
		})
	})

	When("there are no lines", func() {
		BeforeEach(func() {
			lines = Lines{}
		})

		It("reports nothing found", func() {
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("extractBranch", func() {
	It("returns the first line naming a city, branch or location", func() {
		branch, ok := extractBranch(Lines{"Robinson Malls", "  Caloocan City ", "Makati Branch"})
		Expect(ok).To(BeTrue())
		Expect(branch).To(Equal("Caloocan City"))
	})

	It("ignores lines mentioning an index", func() {
		branch, ok := extractBranch(Lines{"Price Index City", "Location: Pasig"})
		Expect(ok).To(BeTrue())
		Expect(branch).To(Equal("Location: Pasig"))
	})

	It("reports nothing found without a match", func() {
		_, ok := extractBranch(Lines{"Robinson Malls"})
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("extractManagerName", func() {
	It("returns the line after the manager label", func() {
		name, ok := extractManagerName(Lines{"Store Manager:", "  Jane Doe "})
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("Jane Doe"))
	})

	It("reports nothing found when the label is the last line", func() {
		_, ok := extractManagerName(Lines{"Jane Doe", "Manager"})
		Expect(ok).To(BeFalse())
	})

	It("stops at the first label when its value is blank", func() {
		_, ok := extractManagerName(Lines{"Manager", "", "Manager on duty", "Bob"})
		Expect(ok).To(BeFalse())
	})

	It("ignores later labels once the first one is found", func() {
		_, ok := extractManagerName(Lines{"Branch Manager", "   ", "Jane", "Manager", "Ann"})
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("extractCashierNumber", func() {
	It("strips the hash from the following line", func() {
		number, ok := extractCashierNumber(Lines{"Cashier", "#5"})
		Expect(ok).To(BeTrue())
		Expect(number).To(Equal("5"))
	})

	It("skips cashier labels not followed by a hash", func() {
		number, ok := extractCashierNumber(Lines{"Cashier: Ana", "Cashier", "# 12"})
		Expect(ok).To(BeTrue())
		Expect(number).To(Equal("12"))
	})

	It("reports nothing found without a hash line", func() {
		_, ok := extractCashierNumber(Lines{"Cashier", "5"})
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("extractSubtotal", func() {
	It("parses the amount after a sub total label", func() {
		subtotal, ok := extractSubtotal(Lines{"Sub Total", "$107.60"})
		Expect(ok).To(BeTrue())
		Expect(subtotal.StringFixed(2)).To(Equal("107.60"))
	})

	It("keeps searching after an unparseable candidate", func() {
		subtotal, ok := extractSubtotal(Lines{"Total", "not-a-number", "Total", "50.00"})
		Expect(ok).To(BeTrue())
		Expect(subtotal.StringFixed(2)).To(Equal("50.00"))
	})

	It("reports nothing found when no candidate parses", func() {
		_, ok := extractSubtotal(Lines{"Subtotal", "n/a", "Total"})
		Expect(ok).To(BeFalse())
	})

	It("rejects amounts with an absurd exponent and keeps searching", func() {
		subtotal, ok := extractSubtotal(Lines{"Total", "1e-50000000", "Total", "1e20", "Total", "5.00"})
		Expect(ok).To(BeTrue())
		Expect(subtotal.StringFixed(2)).To(Equal("5.00"))
	})
})

var _ = Describe("extractCash", func() {
	It("reads the amount after an exact cash label", func() {
		cash, ok := extractCash(Lines{"Cash", "200.00"})
		Expect(ok).To(BeTrue())
		Expect(cash.StringFixed(2)).To(Equal("200.00"))
	})

	It("does not treat Cashless as a cash label", func() {
		_, ok := extractCash(Lines{"Cashless", "10.00"})
		Expect(ok).To(BeFalse())
	})

	It("ignores case, padding and dollar signs", func() {
		cash, ok := extractCash(Lines{" CASH ", "$5"})
		Expect(ok).To(BeTrue())
		Expect(cash.StringFixed(2)).To(Equal("5.00"))
	})

	It("keeps searching after an unparseable candidate", func() {
		cash, ok := extractCash(Lines{"Cash", "abc", "Cash", "7.5"})
		Expect(ok).To(BeTrue())
		Expect(cash.StringFixed(2)).To(Equal("7.50"))
	})
})

var _ = Describe("extractChangeAmount", func() {
	It("reads the amount after an exact change label", func() {
		change, ok := extractChangeAmount(Lines{"Change", "92.40"})
		Expect(ok).To(BeTrue())
		Expect(change.StringFixed(2)).To(Equal("92.40"))
	})

	It("does not match words containing change", func() {
		_, ok := extractChangeAmount(Lines{"Exchange", "1.00"})
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("scanLabeled", func() {
	It("reads the label line itself with a zero offset", func() {
		value, ok := scanLabeled(Lines{"a", "Branch 7"}, containing("branch"), 0, parseText)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("Branch 7"))
	})

	It("skips labels whose value does not parse", func() {
		value, ok := scanLabeled(Lines{"Cashier", "Ana", "Cashier", "#7"}, containing("cashier"), 1, parseCashier)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("7"))
	})
})

var _ = Describe("firstLabeled", func() {
	It("reads only the first label's value", func() {
		value, ok := firstLabeled(Lines{"Manager", "Jane", "Manager", "Ann"}, containing("manager"), 1, parseText)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("Jane"))
	})
})
