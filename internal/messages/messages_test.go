package messages_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/archaicfs/internal/messages"
)

var _ = Describe("FormatUserMessage", func() {
	It("builds a string based on the available data", func() {
		Expect(messages.FormatUserMessage("message", "", messages.Location{}, "")).To(Equal("message"))
		Expect(messages.FormatUserMessage("message", "frame", messages.Location{}, "")).To(Equal("message\n  > frame"))
		Expect(messages.FormatUserMessage("message", "frame", messages.Location{}, "advice")).To(Equal("message\n  > frame\nadvice"))

		location := messages.Location{FileName: "session.yml", Line: 5, Column: 5, Step: 2}
		Expect(messages.FormatUserMessage("message", "cd: /usr\nexpect: x\n", location, "advice")).To(Equal(`message
  > cd: /usr
  > expect: x
  at step 2 (session.yml:5:5)
advice`))
	})
})

var _ = Describe("Location", func() {
	It("renders whatever is known", func() {
		Expect(messages.Location{}.String()).To(Equal(""))
		Expect(messages.Location{FileName: "a.yml"}.String()).To(Equal("a.yml"))
		Expect(messages.Location{Step: 3}.String()).To(Equal("step 3"))
		Expect(messages.Location{FileName: "a.yml", Line: 1, Column: 3}.String()).To(Equal("a.yml:1:3"))
	})
})
