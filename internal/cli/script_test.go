package cli_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/archaicfs/internal/cli"
)

var _ = Describe("ParseScript", func() {
	It("records where every step lives", func() {
		script, err := cli.ParseScript("session.yml", []byte(`requires: ">= 0.1.0"
steps:
  - mkdir: /usr/a
    parents: true

  - write: /usr/a/notes.txt
    content: hello
    options: [create, truncate]
  - read: /usr/a/notes.txt
    expect: hello
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(script.Path).To(Equal("session.yml"))
		Expect(script.Requires).To(Equal(">= 0.1.0"))
		Expect(script.Steps).To(HaveLen(3))

		Expect(*script.Steps[0].Mkdir).To(Equal("/usr/a"))
		Expect(script.Steps[0].Parents).To(BeTrue())
		Expect(script.Steps[0].Location.Step).To(Equal(1))
		Expect(script.Steps[0].Location.Line).To(Equal(3))

		Expect(script.Steps[1].Options).To(Equal([]string{"create", "truncate"}))
		Expect(script.Steps[1].Location.Line).To(Equal(6))
		Expect(script.Steps[1].Source).To(ContainSubstring("content: hello"))

		Expect(*script.Steps[2].Expect).To(Equal("hello"))
		Expect(script.Steps[2].Location.FileName).To(Equal("session.yml"))
	})

	It("rejects unknown keys", func() {
		_, err := cli.ParseScript("session.yml", []byte("steps:\n  - mkdir: /a\n    recursive: true\n"))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unable to parse session.yml"))
	})

	It("rejects options that do not belong to the operation", func() {
		_, err := cli.ParseScript("session.yml", []byte("steps:\n  - cd: /a\n    parents: true\n"))
		Expect(err).To(MatchError(ContainSubstring("parents and exist-ok only apply to mkdir")))

		_, err = cli.ParseScript("session.yml", []byte("steps:\n  - read: /a\n    options: [append]\n"))
		Expect(err).To(MatchError(ContainSubstring("content and options only apply to write")))

		_, err = cli.ParseScript("session.yml", []byte("steps:\n  - mkdir: /a\n    expect: x\n"))
		Expect(err).To(MatchError(ContainSubstring("mkdir has no output to expect")))
	})

	It("rejects unrecognized write options", func() {
		_, err := cli.ParseScript("session.yml", []byte("steps:\n  - write: a\n    options: [creat, truncate]\n    expect-error: invalid-argument\n"))
		Expect(err.Error()).To(ContainSubstring("unrecognized write option creat"))
		Expect(err.Error()).To(ContainSubstring("at step 1 (session.yml:2:"))
	})

	It("leaves conflicting write options to the step", func() {
		script, err := cli.ParseScript("session.yml", []byte("steps:\n  - write: a\n    options: [create, create-if-not-exists, truncate]\n    expect-error: invalid-argument\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(script.Steps).To(HaveLen(1))
	})

	It("rejects expecting both output and an error", func() {
		_, err := cli.ParseScript("session.yml", []byte("steps:\n  - read: /a\n    expect: x\n    expect-error: file-not-found\n"))

		var scriptErr *cli.ScriptError
		Expect(err).To(BeAssignableToTypeOf(scriptErr))
		Expect(err.Error()).To(ContainSubstring("cannot have both expect and expect-error"))
		Expect(err.Error()).To(ContainSubstring("at step 1 (session.yml:2:"))
	})

	It("accepts a script without steps", func() {
		script, err := cli.ParseScript("empty.yml", []byte("steps: []\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(script.Steps).To(BeEmpty())
	})
})
