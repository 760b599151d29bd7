package interpret

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("scanItems", func() {
	var (
		lines Lines
		items []LineItem
	)

	JustBeforeEach(func() {
		items = scanItems(lines)
	})

	When("the block has residual column headers", func() {
		BeforeEach(func() {
			lines = Lines{"Name", "Qty", "Price", "Ginger Tea", "1", "9.20", "Sub Total", "107.60"}
		})

		It("emits exactly the one item", func() {
			Expect(describeItems(items)).To(Equal([]string{"Ginger Tea|1|9.20"}))
		})
	})

	When("the block holds several items", func() {
		BeforeEach(func() {
			lines = Lines{"NAME", "Qty", "Price", "Ginger Tea", "1", "$9.20", "Brewed Coffee", "2", "19.20", "Total", "Yakult", "1", "15.00"}
		})

		It("reads every item up to the totals line", func() {
			Expect(describeItems(items)).To(Equal([]string{
				"Ginger Tea|1|9.20",
				"Brewed Coffee|2|19.20",
			}))
		})
	})

	When("there is no name header", func() {
		BeforeEach(func() {
			lines = Lines{"Ginger Tea", "1", "9.20"}
		})

		It("returns no items", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("a totals line appears before the header", func() {
		BeforeEach(func() {
			lines = Lines{"Total", "0.00", "Name", "Yakult", "1", "15.00"}
		})

		It("keeps seeking the header", func() {
			Expect(describeItems(items)).To(Equal([]string{"Yakult|1|15.00"}))
		})
	})

	When("noise lines are mixed into the block", func() {
		BeforeEach(func() {
			lines = Lines{"Name", "junk", "Tea", "2", "$3.50", "Coffee", "x", "1.00", "Sub Total"}
		})

		It("skips lines that do not start a complete item", func() {
			Expect(describeItems(items)).To(Equal([]string{"Tea|2|3.50"}))
		})
	})

	When("the last window runs past the end", func() {
		BeforeEach(func() {
			lines = Lines{"Name", "Tea", "1"}
		})

		It("returns no items", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("a quantity is negative", func() {
		BeforeEach(func() {
			lines = Lines{"Name", "Refund", "-1", "1.00"}
		})

		It("does not emit the item", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("a product line is blank", func() {
		BeforeEach(func() {
			lines = Lines{"Name", "", "1", "2.00"}
		})

		It("keeps the product text as read", func() {
			Expect(describeItems(items)).To(Equal([]string{"|1|2.00"}))
		})
	})
})
